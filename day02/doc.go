// Package day02 solves the invalid product ID puzzle: given inclusive ID
// ranges, find IDs made of a repeated digit block.
//
// Part 1 sums the IDs that are a block written exactly twice (1212, 3434).
// Part 2 sums the distinct IDs that are a block written two or more times
// (111, 1212, 197019701970).
package day02
