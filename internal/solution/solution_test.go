package solution

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineCounter is a toy solver: part 1 counts lines, part 2 sums them.
type lineCounter struct{}

func (lineCounter) Part1(input string) (string, error) {
	return strconv.Itoa(len(strings.Fields(input))), nil
}

func (lineCounter) Part2(input string) (string, error) {
	sum := 0
	for _, f := range strings.Fields(input) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return "", err
		}
		sum += n
	}
	return strconv.Itoa(sum), nil
}

func TestRegistryFallsBackToPlaceholder(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, Placeholder{}, r.For(1))

	r.Register(1, lineCounter{})
	assert.Equal(t, lineCounter{}, r.For(1))
	assert.Equal(t, Placeholder{}, r.For(2))
}

func TestRunPlaceholder(t *testing.T) {
	answers, err := Run(Placeholder{}, 7, "anything")
	require.NoError(t, err)
	assert.Equal(t, Answers{Day: 7, Part1: "42", Part2: "42"}, answers)
}

func TestRunSolver(t *testing.T) {
	answers, err := Run(lineCounter{}, 1, "123\n456")
	require.NoError(t, err)
	assert.Equal(t, "2", answers.Part1)
	assert.Equal(t, "579", answers.Part2)
}

func TestRunStopsOnError(t *testing.T) {
	_, err := Run(lineCounter{}, 3, "1\nx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 3 part 2")

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}
