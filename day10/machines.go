package day10

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
)

// Sentinel errors for parsing and solving.
var (
	// ErrBadMachine is returned when a line is missing its target or
	// joltage section, or holds an unparsable token.
	ErrBadMachine = errors.New("day10: machine must be [target] (button)... {joltage}")

	// ErrUnsolvable is returned when no press sequence can satisfy a
	// machine.
	ErrUnsolvable = errors.New("day10: machine cannot be solved")
)

// Machine is one indicator machine.
type Machine struct {
	target  uint64   // indicators that must end lit
	buttons []uint64 // per button, the indicators it touches
	joltage []uint64 // per indicator, the required press count
}

// ParseMachines reads one machine per line. Sections are whitespace-separated
// and keyed by their bracket: [..] target pattern, (..) button, {..} joltage
// counts.
func ParseMachines(r io.Reader) ([]Machine, error) {
	var machines []Machine
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m, err := parseMachine(line)
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("day10: read input: %w", err)
	}

	return machines, nil
}

func parseMachine(line string) (Machine, error) {
	var m Machine
	haveTarget, haveJoltage := false, false
	for _, word := range strings.Fields(line) {
		if len(word) < 2 {
			return Machine{}, fmt.Errorf("%w: token %q", ErrBadMachine, word)
		}
		body := word[1 : len(word)-1]
		switch word[0] {
		case '[':
			for i := 0; i < len(body); i++ {
				if body[i] == '#' {
					m.target |= 1 << i
				}
			}
			haveTarget = true
		case '(':
			mask, err := parseIndicators(body)
			if err != nil {
				return Machine{}, err
			}
			m.buttons = append(m.buttons, mask)
		case '{':
			for _, sub := range strings.Split(body, ",") {
				v, err := strconv.ParseUint(sub, 10, 64)
				if err != nil {
					return Machine{}, fmt.Errorf("%w: count %q", ErrBadMachine, sub)
				}
				m.joltage = append(m.joltage, v)
			}
			haveJoltage = true
		default:
			return Machine{}, fmt.Errorf("%w: token %q", ErrBadMachine, word)
		}
	}
	if !haveTarget || !haveJoltage {
		return Machine{}, fmt.Errorf("%w: %q", ErrBadMachine, line)
	}

	return m, nil
}

// parseIndicators turns a comma-separated indicator list into a bitmask.
func parseIndicators(body string) (uint64, error) {
	var mask uint64
	for _, sub := range strings.Split(body, ",") {
		pos, err := strconv.ParseUint(sub, 10, 6)
		if err != nil {
			return 0, fmt.Errorf("%w: indicator %q", ErrBadMachine, sub)
		}
		mask |= 1 << pos
	}

	return mask, nil
}

// MinToggle returns the fewest button presses, each button at most once,
// that light exactly the target indicators.
//
// Presses commute and double presses cancel, so the machine state is the XOR
// of the chosen buttons. A breadth-first walk over states finds the shortest
// press count.
func (m Machine) MinToggle() (int, error) {
	dist := map[uint64]int{0: 0}
	queue := []uint64{0}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		if state == m.target {
			return dist[state], nil
		}
		for _, b := range m.buttons {
			next := state ^ b
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[state] + 1
			queue = append(queue, next)
		}
	}

	return 0, fmt.Errorf("%w: no press pattern reaches the target", ErrUnsolvable)
}

// MinJoltage returns the fewest total presses, buttons pressed any number of
// times, so that every indicator is pressed exactly its joltage count.
//
// The counts are consumed binary digit by binary digit: a subset of buttons
// pressed an odd number of times fixes the lowest bit of every count, the
// halved remainder recurses. States repeat across branches, so results are
// memoized on the remaining counts.
func (m Machine) MinJoltage() (uint64, error) {
	if len(m.buttons) > 20 {
		return 0, fmt.Errorf("%w: too many buttons (%d)", ErrUnsolvable, len(m.buttons))
	}

	// Per subset of buttons: how often each indicator is pressed, and the
	// parity mask those presses flip.
	subsets := 1 << len(m.buttons)
	adds := make([][]uint64, subsets)
	parity := make([]uint64, subsets)
	sizes := make([]uint64, subsets)
	for s := 0; s < subsets; s++ {
		adds[s] = make([]uint64, len(m.joltage))
		sizes[s] = uint64(bits.OnesCount(uint(s)))
		for i, b := range m.buttons {
			if s&(1<<i) == 0 {
				continue
			}
			parity[s] ^= b
			for pos := 0; pos < len(m.joltage); pos++ {
				if b&(1<<pos) != 0 {
					adds[s][pos]++
				}
			}
		}
	}

	memo := make(map[string]uint64)
	best, ok := m.minJoltage(m.joltage, adds, parity, sizes, memo)
	if !ok {
		return 0, fmt.Errorf("%w: counts cannot be met", ErrUnsolvable)
	}

	return best, nil
}

// minJoltage solves one remaining-counts state; ok is false when no subset
// choice can zero it out.
func (m Machine) minJoltage(
	counts []uint64,
	adds [][]uint64,
	parity []uint64,
	sizes []uint64,
	memo map[string]uint64,
) (uint64, bool) {
	var want uint64
	done := true
	for pos, c := range counts {
		if c != 0 {
			done = false
		}
		if c&1 != 0 {
			want |= 1 << pos
		}
	}
	if done {
		return 0, true
	}

	key := stateKey(counts)
	if v, seen := memo[key]; seen {
		return v, v != unsolvable
	}

	best := unsolvable
	next := make([]uint64, len(counts))
	for s := range adds {
		if parity[s] != want {
			continue
		}
		fits := true
		for pos, c := range counts {
			if adds[s][pos] > c {
				fits = false
				break
			}
			next[pos] = (c - adds[s][pos]) / 2
		}
		if !fits {
			continue
		}
		sub, ok := m.minJoltage(next, adds, parity, sizes, memo)
		if ok && sizes[s]+2*sub < best {
			best = sizes[s] + 2*sub
		}
	}
	memo[key] = best

	return best, best != unsolvable
}

const unsolvable = ^uint64(0)

// stateKey encodes a counts vector for memoization.
func stateKey(counts []uint64) string {
	buf := make([]byte, 0, 4*len(counts))
	for _, c := range counts {
		buf = strconv.AppendUint(buf, c, 10)
		buf = append(buf, ',')
	}

	return string(buf)
}

// SumToggle sums the part 1 answer over all machines.
func SumToggle(machines []Machine) (uint64, error) {
	var total uint64
	for i, m := range machines {
		n, err := m.MinToggle()
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i, err)
		}
		total += uint64(n)
	}

	return total, nil
}

// SumJoltage sums the part 2 answer over all machines.
func SumJoltage(machines []Machine) (uint64, error) {
	var total uint64
	for i, m := range machines {
		n, err := m.MinJoltage()
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i, err)
		}
		total += n
	}

	return total, nil
}

// Solve parses the machine list and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	machines, err := ParseMachines(r)
	if err != nil {
		return "", "", err
	}
	toggles, err := SumToggle(machines)
	if err != nil {
		return "", "", err
	}
	joltage, err := SumJoltage(machines)
	if err != nil {
		return "", "", err
	}

	return strconv.FormatUint(toggles, 10),
		strconv.FormatUint(joltage, 10), nil
}
