package day11

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadDevice is returned when a line is not "<name>: <output> ...".
var ErrBadDevice = errors.New("day11: device must be <name>: <output> ...")

// Well-known device names.
const (
	deviceYou = "you"
	deviceOut = "out"
	deviceSvr = "svr"
	deviceDac = "dac"
	deviceFft = "fft"
)

// Network is the device graph: per device, the devices it feeds into.
type Network struct {
	edges map[string][]string
}

// ParseNetwork reads one "<name>: <output> ..." line per device.
func ParseNetwork(r io.Reader) (*Network, error) {
	n := &Network{edges: make(map[string][]string)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, outputs, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadDevice, line)
		}
		n.edges[name] = strings.Fields(outputs)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("day11: read input: %w", err)
	}

	return n, nil
}

// PathCount returns the number of distinct paths from one device to another.
// A device with no outputs contributes no paths.
func (n *Network) PathCount(from, to string) uint64 {
	cache := map[string]uint64{to: 1}

	return n.pathCount(from, cache)
}

func (n *Network) pathCount(origin string, cache map[string]uint64) uint64 {
	if count, ok := cache[origin]; ok {
		return count
	}

	var count uint64
	for _, target := range n.edges[origin] {
		count += n.pathCount(target, cache)
	}
	cache[origin] = count

	return count
}

// CountEscapePaths counts the paths from "you" to "out".
func (n *Network) CountEscapePaths() uint64 {
	return n.PathCount(deviceYou, deviceOut)
}

// CountServerPaths counts the paths from "svr" to "out" that visit both
// "dac" and "fft". The graph is acyclic, so every such path threads the two
// waypoints in a fixed order and the count factors into three legs.
func (n *Network) CountServerPaths() uint64 {
	return n.PathCount(deviceSvr, deviceDac)*
		n.PathCount(deviceDac, deviceFft)*
		n.PathCount(deviceFft, deviceOut) +
		n.PathCount(deviceSvr, deviceFft)*
			n.PathCount(deviceFft, deviceDac)*
			n.PathCount(deviceDac, deviceOut)
}

// Solve parses the device list and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	n, err := ParseNetwork(r)
	if err != nil {
		return "", "", err
	}

	return strconv.FormatUint(n.CountEscapePaths(), 10),
		strconv.FormatUint(n.CountServerPaths(), 10), nil
}
