package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
)

// Parse reads a puzzle in its textual format and returns a fully constrained
// Instance. One line per grid row; empty lines and lines starting with '#'
// are skipped; '.' marks an empty cell and any other character a terminal.
// Every character (including '.') enters the label table in first-seen order.
func Parse(reader io.Reader) (*Instance, error) {
	rows := [][]rune{}
	labels := []rune{}
	labelIndices := map[rune]int{}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}

		row := []rune(line)
		rows = append(rows, row)
		for _, symbol := range row {
			if _, ok := labelIndices[symbol]; !ok {
				labelIndices[symbol] = len(labels)
				labels = append(labels, symbol)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("puzzle has no rows")
	}
	width := len(rows[0])
	if lo.SomeBy(rows, func(row []rune) bool { return len(row) != width }) {
		return nil, fmt.Errorf("all rows must have the same width: %v", width)
	}

	instance := NewInstance(labels, width, len(rows))
	instance.SetUpBasicConstraints()
	instance.SetUpSpanningUniqueConstraints()

	for i, row := range rows {
		for j, symbol := range row {
			if symbol == '.' {
				instance.Empty(i, j)
			} else {
				instance.Fill(i, j, labelIndices[symbol])
			}
		}
	}

	return instance, nil
}
