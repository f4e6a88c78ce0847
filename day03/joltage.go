package day03

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Reading widths asked for by the two parts.
const (
	shortReading = 2
	longReading  = 12
)

// ErrNotADigit is returned when a bank line holds a non-digit character.
var ErrNotADigit = errors.New("day03: bank lines must be decimal digits")

// Bank is one line of battery cells, most significant first.
type Bank []byte

// ParseBanks reads one digit line per bank.
func ParseBanks(r io.Reader) ([]Bank, error) {
	var banks []Bank
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		bank := make(Bank, len(line))
		for i := 0; i < len(line); i++ {
			if line[i] < '0' || line[i] > '9' {
				return nil, fmt.Errorf("%w: %q", ErrNotADigit, line)
			}
			bank[i] = line[i] - '0'
		}
		banks = append(banks, bank)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("day03: read input: %w", err)
	}

	return banks, nil
}

// MaxReading returns the largest k-digit number obtainable by keeping k cells
// of the bank in their original order.
//
// A monotonic stack does it in one pass: while the current digit beats the
// stack top and we can still afford to drop cells, pop. Digits beyond k are
// dropped from the tail.
//
// Complexity: O(n) per bank, every cell pushed and popped at most once.
func MaxReading(bank Bank, k int) uint64 {
	if k <= 0 || len(bank) < k {
		return 0
	}

	drops := len(bank) - k
	stack := make([]byte, 0, len(bank))
	for _, d := range bank {
		for len(stack) > 0 && drops > 0 && stack[len(stack)-1] < d {
			stack = stack[:len(stack)-1]
			drops--
		}
		stack = append(stack, d)
	}

	var value uint64
	for _, d := range stack[:k] {
		value = value*10 + uint64(d)
	}

	return value
}

// TotalJoltage sums the best k-digit reading over all banks.
func TotalJoltage(banks []Bank, k int) uint64 {
	var sum uint64
	for _, bank := range banks {
		sum += MaxReading(bank, k)
	}

	return sum
}

// Solve parses the banks and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	banks, err := ParseBanks(r)
	if err != nil {
		return "", "", err
	}

	return strconv.FormatUint(TotalJoltage(banks, shortReading), 10),
		strconv.FormatUint(TotalJoltage(banks, longReading), 10), nil
}
