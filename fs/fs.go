// Package fs provides file-based implementations of the talmud services.
package fs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single input line. Curated responses with many
// references can exceed bufio.Scanner's 64KiB default.
const maxLineSize = 16 * 1024 * 1024

// scanLines opens path and calls fn for every line in order until fn returns
// false or an error. Line numbers start at 1. The file is always closed
// before scanLines returns.
func scanLines(ctx context.Context, path string, fn func(n int, line string) (bool, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return scan(ctx, f, fn)
}

func scan(ctx context.Context, r io.Reader, fn func(n int, line string) (bool, error)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for n := 1; scanner.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		more, err := fn(n, scanner.Text())
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return scanner.Err()
}
