package app

import (
	"bufio"
	"fmt"
	"io"
)

// Run feeds lines from in to s and writes the results to out until in is exhausted or the
// session quits. prompt is written before every line when non-empty.
func Run(s *Session, in io.Reader, out io.Writer, prompt string) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt != "" {
			if _, err := io.WriteString(out, prompt); err != nil {
				return err
			}
		}
		if !sc.Scan() {
			break
		}
		for _, line := range s.Handle(sc.Text()) {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
		if s.Done() {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if prompt != "" {
		_, _ = io.WriteString(out, "\n")
	}
	return nil
}
