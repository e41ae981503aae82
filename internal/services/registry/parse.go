package registry

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// symbolColumns are the header names that carry the ticker symbol in the
// official directories: "Symbol" for the NASDAQ file, "ACT Symbol" for the
// NYSE/other file.
var symbolColumns = []string{"Symbol", "ACT Symbol"}

// parseSymbolFile parses a pipe-delimited exchange symbol directory. The
// first line is a header; the final line is a file footer ("File Creation
// Time: ...") and is skipped, as are blank lines and rows without a symbol.
func parseSymbolFile(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read symbol file: %w", err)
		}
		return nil, fmt.Errorf("symbol file is empty")
	}

	header := strings.Split(scanner.Text(), "|")
	symbolIdx := -1
	for _, name := range symbolColumns {
		for i, column := range header {
			if strings.TrimSpace(column) == name {
				symbolIdx = i
				break
			}
		}
		if symbolIdx >= 0 {
			break
		}
	}
	if symbolIdx < 0 {
		return nil, fmt.Errorf("symbol file header has no symbol column: %q", header)
	}

	var symbols []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "File Creation Time") {
			continue
		}

		fields := strings.Split(line, "|")
		if symbolIdx >= len(fields) {
			continue
		}
		symbol := strings.TrimSpace(fields[symbolIdx])
		if symbol == "" {
			continue
		}
		symbols = append(symbols, symbol)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read symbol file: %w", err)
	}

	return symbols, nil
}
