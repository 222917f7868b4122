package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"

	"github.com/deepnoodle-ai/blockgen/errors"
)

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatError renders err for stderr. Generation errors get the detailed
// layout; anything else is printed in red.
func formatError(err error) string {
	var fe errors.FormattableError
	if errors.As(err, &fe) {
		return errors.Friendly(err, !color.NoColor)
	}
	return red(err.Error()) + "\n"
}

func getOutputFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case "", "text":
		return "text", nil
	case "json":
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

// getOutputJSON marshals result, colorized when writing to a terminal.
func getOutputJSON(result any, pretty bool) ([]byte, error) {
	if pretty && !color.NoColor {
		return prettyjson.Marshal(result)
	}
	return json.MarshalIndent(result, "", "  ")
}
