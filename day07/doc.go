// Package day07 solves the tachyon manifold puzzle: a beam enters at S and
// falls straight down a grid dotted with splitters (^). The first splitter a
// ray meets sends new rays down the two adjacent columns.
//
// Part 1 fires one beam and counts the splitters that actually split: a
// splitter splits only once, and later rays into it are absorbed. Part 2
// asks how many timelines a single tachyon ends up in when every splitter
// always splits it both ways: the number of distinct paths to the floor.
package day07
