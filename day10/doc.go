// Package day10 solves the indicator machine puzzle. Each input line is one
// machine: a target pattern of lit indicators, a set of buttons that each
// toggle a fixed group of indicators, and a joltage count per indicator.
//
// Part 1 finds, per machine, the fewest button presses (each button at most
// once) that leave exactly the target indicators lit, and sums them; toggling
// is XOR, so this is a shortest path over parity masks. Part 2 instead
// requires every indicator to be pressed exactly its joltage count of times,
// buttons pressed any number of times; the minimum press total is found by a
// digit-by-digit DP over button subsets, halving the remaining counts.
package day10
