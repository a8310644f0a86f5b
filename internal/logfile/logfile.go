package logfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

const (
	initialBufferSize = 64 * 1024

	// DefaultMaxLineBytes is the longest line Scan accepts when the caller
	// passes a non-positive limit.
	DefaultMaxLineBytes = 1024 * 1024
)

// Open opens path for sequential reading. Errors wrap the underlying
// *fs.PathError so callers can test for os.ErrNotExist.
func Open(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return file, nil
}

// Scan calls fn for each line of r in order, without the line terminator.
// It stops at the first error returned by fn and returns it unchanged.
func Scan(r io.Reader, maxLineBytes int, fn func(line string) error) error {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	initial := min(initialBufferSize, maxLineBytes)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), maxLineBytes)
	scanner.Split(scanLines)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	return nil
}

// scanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a
// lone "\r". The terminator is dropped.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// A trailing '\r' may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
