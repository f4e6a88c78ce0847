// Package day01 solves the dial puzzle: a safe dial with positions 0–99
// starts at 50 and is turned left or right by a list of rotations.
//
// Part 1 counts the rotations that leave the dial pointing at 0.
// Part 2 counts every time the dial points at 0 while turning, including
// intermediate full revolutions.
package day01
