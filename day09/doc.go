// Package day09 solves the theater floor puzzle: red tiles are listed as 2D
// points, and pairs of them sharing a column or row form the walls of a
// rectilinear room.
//
// Part 1 is the largest inclusive rectangle area spanned by any two red
// tiles. Part 2 restricts the search to rectangles lying inside the room:
// all four corners must pass a parity ray cast and no wall may cut through a
// rectangle edge.
package day09
