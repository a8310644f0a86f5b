// Package logfile opens log files and streams their lines.
//
// # Overview
//
// The analyzer reads each input file exactly once, front to back. This
// package provides the two pieces that pass needs:
//
//  1. Open: acquire the file, wrapping failures as "open log: ..."
//  2. Scan: feed every line to a callback in file order
//
// Open does not decide what a failure means. The analyzer classifies
// os.ErrNotExist as a missing file and everything else as unreadable.
//
// # Line Splitting
//
// Scan uses bufio.Scanner with its own split function, so "\n", "\r\n" and a
// lone "\r" all end a line and the terminator is dropped. The final line does
// not need a trailing newline.
//
// # Buffer Sizing
//
//   - Initial buffer: 64KB (or the limit, if smaller)
//   - Maximum line: configurable, 1MB by default
//
// A line longer than the maximum stops the scan with a wrapped
// bufio.ErrTooLong ("read log: bufio.Scanner: token too long").
//
// # Usage Example
//
//	file, err := logfile.Open(path)
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//
//	err = logfile.Scan(file, 0, func(line string) error {
//		fmt.Println(line)
//		return nil
//	})
package logfile
