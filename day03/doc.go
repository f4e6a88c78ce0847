// Package day03 solves the battery bank puzzle: each line is a row of digit
// cells, and a reading is formed by picking digits left to right.
//
// Part 1 sums the best 2-digit reading of every bank; part 2 the best
// 12-digit reading. Both use the same monotonic-stack selection.
package day03
