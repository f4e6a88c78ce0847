// Package day11 solves the device network puzzle: each line names a device
// and the devices its outputs feed into, forming a directed acyclic graph.
//
// Part 1 counts the distinct paths from "you" to "out". Part 2 counts the
// paths from "svr" to "out" that visit both "dac" and "fft"; in a DAG the
// two can only be visited in one order, so the count is a product of
// waypoint-to-waypoint path counts, summed over both orders.
package day11
