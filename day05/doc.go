// Package day05 solves the fresh ingredient puzzle: inclusive ID ranges mark
// fresh ingredients, then a list of IDs is checked against them.
//
// Ranges are held in an interval-fusion tree — a binary search tree whose
// nodes are disjoint ranges. Inserting an overlapping range fuses it into the
// node and splices away children swallowed by the wider span, so the tree
// always stores the minimal set of disjoint ranges.
//
// Part 1 counts the listed IDs that fall in some range; part 2 is the total
// number of IDs covered by all ranges.
package day05
