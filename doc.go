// Package advent2025 is a collection of twelve independent daily puzzle
// solutions — one self-contained package per day, nothing shared between them.
//
// 🎄 What is in here?
//
//	Each dayNN package reads one small text input, computes two answers and
//	hands them back as strings:
//		• day01 — dial rotations (modular arithmetic, zero crossings)
//		• day02 — invalid product IDs (digit-block repetition search)
//		• day03 — battery joltage (monotonic-stack digit selection)
//		• day04 — paper rolls (cellular removal rounds on a grid)
//		• day05 — fresh ingredient ranges (interval-fusion tree)
//		• day06 — worksheet arithmetic (column-wise, then digit-column math)
//		• day07 — tachyon manifold (ray/splitter simulation, timeline counting)
//		• day08 — junction box circuits (nearest pairs + union-find)
//		• day09 — theater rectangles (rectilinear polygon geometry)
//		• day10 — indicator machines (bitmask BFS, binary-carry press DP)
//		• day11 — device graph (memoized DAG path counting)
//		• day12 — present packing (fit classification)
//
// Each package keeps its parser, both computations, its tests and a verified
// sample input under testdata/. The only glue is at the edges:
//
//	cmd/advent      — the binary
//	internal/cli    — cobra commands (run, list)
//	internal/solve  — day registry + timed execution
//
// Days never import the glue, each other, or anything outside the standard
// library. Run a day with:
//
//	advent run 5 day05/testdata/sample.txt
package advent2025
