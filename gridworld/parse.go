package gridworld

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse builds a Grid from text rows. A row containing whitespace is split
// into tokens; otherwise every character is one label ("S__X_").
func Parse(rows []string, opts ...Option) (*Grid, error) {
	tokens := make([][]string, len(rows))
	for i, row := range rows {
		tokens[i] = splitRow(row)
	}
	return ParseTokens(tokens, opts...)
}

// ParseTokens builds a Grid from one label per cell, e.g. {{"S","_","X"}}.
func ParseTokens(rows [][]string, opts ...Option) (*Grid, error) {
	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]Cell, len(row))
		for c, label := range row {
			cell, err := ParseCell(label)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, r, c)
			}
			cells[r][c] = cell
		}
	}
	return New(cells, opts...)
}

// Read parses a grid from r. Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader, opts ...Option) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridworld: read grid: %w", err)
	}
	return Parse(rows, opts...)
}

// ReadFile parses the grid stored at path.
func ReadFile(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridworld: open grid: %w", err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func splitRow(row string) []string {
	if strings.ContainsAny(row, " \t") {
		return strings.Fields(row)
	}
	out := make([]string, 0, len(row))
	for _, ch := range row {
		out = append(out, string(ch))
	}
	return out
}
