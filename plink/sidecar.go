package plink

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 1 << 20

// scanFields calls fn with the whitespace-separated fields of every non-blank
// line of r. Lines with a field count other than want are rejected.
func scanFields(r io.Reader, name string, want int, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != want {
			return &ParseError{
				File: name,
				Line: line,
				Msg:  fmt.Sprintf("expected %d columns, found %d", want, len(fields)),
			}
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %v: %w", name, err)
	}
	return nil
}
