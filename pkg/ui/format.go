package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects a reporter. FormatAuto is resolved against the output
// before anything is written.
type Format string

const (
	FormatAuto     Format = "auto"
	FormatTerminal Format = "color"
	FormatText     Format = "plain"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// formatNames maps every accepted spelling. "text" is the configured
// default and means human output, colored when the output allows it.
var formatNames = map[string]Format{
	"":      FormatAuto,
	"auto":  FormatAuto,
	"text":  FormatAuto,
	"color": FormatTerminal,
	"term":  FormatTerminal,
	"plain": FormatText,
	"json":  FormatJSON,
	"yaml":  FormatYAML,
	"yml":   FormatYAML,
}

// ParseFormat maps an output setting to a Format.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s).
		WithDetail("key", "output")
}

// Structured reports whether f emits machine-readable records. Nothing but
// records may reach stdout in these formats.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// Resolve picks color or plain for FormatAuto; other formats are returned
// as is. NO_COLOR always wins. CLICOLOR_FORCE keeps color through a pipe,
// as in "dotlink install | less -R".
func (f Format) Resolve(output io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if file, ok := output.(*os.File); ok && !colorForced() && !isTerminal(file) {
		return FormatText
	}
	if termenv.NewOutput(output).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

func colorForced() bool {
	v := os.Getenv("CLICOLOR_FORCE")
	return v != "" && v != "0"
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
