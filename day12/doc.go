// Package day12 solves the present packing puzzle. The input lists piece
// shapes drawn with '#' cells, then packing problems of the form
// "WxH: count count ...", one count per piece shape.
//
// Part 1 classifies each problem with two cheap bounds: it definitely fits
// when every required piece gets its own 3x3 box, it definitely does not fit
// when the pieces' cells outnumber the grid's, and otherwise it is unknown.
// The answer reports all three tallies. Part 2 is a freebie.
package day12
