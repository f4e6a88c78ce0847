package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// TestRunCommand_Golden solves every day's sample input and compares the
// printed answers against the golden files.
func TestRunCommand_Golden(t *testing.T) {
	for day := 1; day <= 12; day++ {
		name := fmt.Sprintf("day%02d", day)
		t.Run(name, func(t *testing.T) {
			sample := filepath.Join("..", "..", name, "testdata", "sample.txt")
			out, err := execute(t, "run", strconv.Itoa(day), sample)
			require.NoError(t, err)

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, name, []byte(out))
		})
	}
}

// TestRunCommand_UnknownDay rejects day numbers outside the calendar.
func TestRunCommand_UnknownDay(t *testing.T) {
	_, err := execute(t, "run", "13", "testdata/missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown day")
}

// TestRunCommand_BadDayArg rejects non-numeric day arguments.
func TestRunCommand_BadDayArg(t *testing.T) {
	_, err := execute(t, "run", "five", "testdata/missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day must be a number")
}

// TestRunCommand_MissingInput surfaces the open error.
func TestRunCommand_MissingInput(t *testing.T) {
	_, err := execute(t, "run", "1", "testdata/missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input")
}
