package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const stdinName = "stdin"

// openInput opens path, or stdin for "" and "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), stdinName, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}

	return f, path, nil
}

// sampleName derives a sample name from an input path.
func sampleName(path string) string {
	if path == "" || path == "-" {
		return stdinName
	}

	base := filepath.Base(path)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}

	return base
}

// scanFields calls fn with the fields of every non-blank, non-comment line.
// Fields are separated by whitespace or commas.
func scanFields(r io.Reader, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if err := fn(line, fields); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func parseField(line int, field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", line, err)
	}

	return v, nil
}

// readValues reads every number in r, in order.
func readValues(r io.Reader) ([]float64, error) {
	var values []float64
	err := scanFields(r, func(line int, fields []string) error {
		for _, field := range fields {
			v, err := parseField(line, field)
			if err != nil {
				return err
			}
			values = append(values, v)
		}

		return nil
	})

	return values, err
}

// readPairs reads two-column (x, y) lines.
func readPairs(r io.Reader) (x, y []float64, err error) {
	err = scanFields(r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected 2 columns, got %d", line, len(fields))
		}

		xv, err := parseField(line, fields[0])
		if err != nil {
			return err
		}
		yv, err := parseField(line, fields[1])
		if err != nil {
			return err
		}
		x = append(x, xv)
		y = append(y, yv)

		return nil
	})

	return x, y, err
}

// loadValues reads the sample named by args[0], or stdin.
func loadValues(cmd *cobra.Command, args []string) ([]float64, string, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	r, source, err := openInput(cmd, path)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()

	values, err := readValues(r)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", source, err)
	}

	return values, sampleName(path), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
