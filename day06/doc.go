// Package day06 solves the worksheet puzzle: rows of numbers aligned in
// columns, with a final row of + and * operators, one per problem.
//
// Part 1 works each problem top to bottom: fold the column's numbers with its
// operator, then sum the results. Part 2 re-reads the sheet the cephalopod
// way: every character column is a number (top digit most significant),
// starting at the operator's column and moving right until an empty column.
package day06
