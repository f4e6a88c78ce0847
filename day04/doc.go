// Package day04 solves the paper roll puzzle: a grid of rolls (@) and empty
// floor (.). A roll is accessible when at most 3 of its 8 neighbors are rolls.
//
// Part 1 counts the accessible rolls. Part 2 removes accessible rolls in
// rounds until none remain accessible and counts the total removed.
package day04
