// Package ui renders what a reconciliation run reports.
//
// The engine only ever sees types.Reporter. The reporters here add a
// closing summary and error rendering on top, in three flavors: aligned
// terminal lines (colored or plain) and structured JSON or YAML records.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/pkg/core"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Reporter is a types.Reporter that also renders the end of a run.
type Reporter interface {
	types.Reporter

	// Finish renders the summary of a completed run.
	Finish(result *core.RunResult) error

	// RenderError renders a fatal error.
	RenderError(err error) error
}

// NewReporter creates a reporter for format writing to output. Paths under
// homeDir are shown with a ~ prefix by the human formats.
func NewReporter(format Format, output io.Writer, homeDir string) (Reporter, error) {
	switch format {
	case FormatAuto:
		return NewReporter(format.Resolve(output), output, homeDir)
	case FormatTerminal:
		return NewTerminalReporter(output, homeDir, true)
	case FormatText:
		return NewTerminalReporter(output, homeDir, false)
	case FormatJSON:
		return NewJSONReporter(output), nil
	case FormatYAML:
		return NewYAMLReporter(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %q", string(format))
	}
}
