// Package day08 solves the junction box puzzle: 3D points are joined into
// circuits by connecting the closest pairs first.
//
// Part 1 takes only the PairLimit closest pairs (squared euclidean distance),
// merges their endpoints with a disjoint-set union, and multiplies the sizes
// of the three largest circuits. Part 2 keeps connecting pairs in ascending
// distance order until every point shares one circuit and reports the product
// of the X coordinates of the final pair connected.
package day08
