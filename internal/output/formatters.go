// Package output provides output formatting utilities for the aoc CLI.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/colthorp/aocdata/internal/solution"
)

// PrintAnswers writes one line per part.
func PrintAnswers(w io.Writer, a solution.Answers) {
	fmt.Fprintf(w, "Day %d, Part 1 answer is: %s\n", a.Day, a.Part1)
	fmt.Fprintf(w, "Day %d, Part 2 answer is: %s\n", a.Day, a.Part2)
}

// PrintInput writes raw input text, ensuring it ends with a newline.
func PrintInput(w io.Writer, text string) {
	fmt.Fprint(w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
}

// PrintDays writes a compact summary like "cached days: 1, 2, 3".
func PrintDays(w io.Writer, label string, days []int) {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = fmt.Sprintf("%d", d)
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(parts, ", "))
}
