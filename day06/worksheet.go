package day06

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Op is a worksheet operator.
type Op byte

// The two operators the sheet knows.
const (
	Plus Op = '+'
	Mult Op = '*'
)

// Sentinel errors for worksheet parsing and evaluation.
var (
	// ErrBadOp is returned for operator tokens other than + and *.
	ErrBadOp = errors.New("day06: operator must be + or *")

	// ErrEmptyProblem is returned when a problem column has no numbers.
	ErrEmptyProblem = errors.New("day06: problem column has no numbers")
)

// token is a word with its character column on the line.
type token struct {
	pos  int
	word string
}

// Worksheet holds the parsed sheet: per row, each number with the column of
// its first digit; plus the operator row with operator columns.
type Worksheet struct {
	numbers [][]placedNumber
	ops     []placedOp
}

type placedNumber struct {
	pos int
	val uint64
}

type placedOp struct {
	pos int
	op  Op
}

// Parse reads the worksheet. The operator row is the line whose first token
// starts with + or *; every other non-empty line is a number row.
func Parse(r io.Reader) (*Worksheet, error) {
	ws := &Worksheet{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		tokens := splitPos(line)
		if word := tokens[0].word; word[0] == '+' || word[0] == '*' {
			for _, tk := range tokens {
				op, err := parseOp(tk.word)
				if err != nil {
					return nil, err
				}
				ws.ops = append(ws.ops, placedOp{pos: tk.pos, op: op})
			}
			continue
		}
		row := make([]placedNumber, 0, len(tokens))
		for _, tk := range tokens {
			val, err := strconv.ParseUint(tk.word, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("day06: bad number %q: %w", tk.word, err)
			}
			row = append(row, placedNumber{pos: tk.pos, val: val})
		}
		ws.numbers = append(ws.numbers, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("day06: read input: %w", err)
	}

	return ws, nil
}

// splitPos splits a line on whitespace, keeping each word's start column.
func splitPos(line string) []token {
	var tokens []token
	start := -1
	for i := 0; i < len(line); i++ {
		blank := line[i] == ' ' || line[i] == '\t'
		switch {
		case start < 0 && !blank:
			start = i
		case start >= 0 && blank:
			tokens = append(tokens, token{pos: start, word: line[start:i]})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{pos: start, word: line[start:]})
	}

	return tokens
}

// parseOp converts an operator token.
func parseOp(word string) (Op, error) {
	switch word {
	case "+":
		return Plus, nil
	case "*":
		return Mult, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadOp, word)
	}
}

// apply folds b into a with the operator.
func (o Op) apply(a, b uint64) uint64 {
	if o == Plus {
		return a + b
	}

	return a * b
}

// problem folds the index-th number of every row with the index-th operator.
func (w *Worksheet) problem(index int) (uint64, error) {
	if len(w.numbers) == 0 {
		return 0, fmt.Errorf("%w: index %d", ErrEmptyProblem, index)
	}
	acc := w.numbers[0][index].val
	for _, row := range w.numbers[1:] {
		acc = w.ops[index].op.apply(acc, row[index].val)
	}

	return acc, nil
}

// TotalTopDown sums all problems read the human way.
func (w *Worksheet) TotalTopDown() (uint64, error) {
	var sum uint64
	for index := range w.ops {
		v, err := w.problem(index)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum, nil
}

// problemColumns folds the numbers formed by reading character columns,
// starting at the operator's column and moving right until a column holds no
// digits. Within a column the top digit is the most significant.
func (w *Worksheet) problemColumns(index int) (uint64, error) {
	// digit column map of this problem's numbers: column -> digits top-down
	digitAt := make([]map[int]uint64, len(w.numbers))
	for i, row := range w.numbers {
		pn := row[index]
		digitAt[i] = placeDigits(pn.pos, pn.val)
	}

	var operands []uint64
	for col := w.ops[index].pos; ; col++ {
		operand, any := uint64(0), false
		for i := range digitAt {
			if d, ok := digitAt[i][col]; ok {
				operand = operand*10 + d
				any = true
			}
		}
		if !any {
			break
		}
		operands = append(operands, operand)
	}
	if len(operands) == 0 {
		return 0, fmt.Errorf("%w: index %d", ErrEmptyProblem, index)
	}

	acc := operands[0]
	for _, v := range operands[1:] {
		acc = w.ops[index].op.apply(acc, v)
	}

	return acc, nil
}

// placeDigits maps each digit of val to its absolute character column, given
// the column of the most significant digit.
func placeDigits(pos int, val uint64) map[int]uint64 {
	digits := strconv.FormatUint(val, 10)
	m := make(map[int]uint64, len(digits))
	for i := 0; i < len(digits); i++ {
		m[pos+i] = uint64(digits[i] - '0')
	}

	return m
}

// TotalColumns sums all problems read the cephalopod way.
func (w *Worksheet) TotalColumns() (uint64, error) {
	var sum uint64
	for index := range w.ops {
		v, err := w.problemColumns(index)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum, nil
}

// Solve parses the worksheet and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	ws, err := Parse(r)
	if err != nil {
		return "", "", err
	}
	p1, err := ws.TotalTopDown()
	if err != nil {
		return "", "", err
	}
	p2, err := ws.TotalColumns()
	if err != nil {
		return "", "", err
	}

	return strconv.FormatUint(p1, 10), strconv.FormatUint(p2, 10), nil
}
