package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotlink/pkg/core"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/types"
	"gopkg.in/yaml.v3"
)

// Record types emitted by the structured reporters.
const (
	RecordAction  = "action"
	RecordCommand = "command"
	RecordSummary = "summary"
	RecordError   = "error"
)

// Record is one unit of structured output. Paths are absolute.
type Record struct {
	Type        string         `json:"type" yaml:"type"`
	Category    types.Category `json:"category,omitempty" yaml:"category,omitempty"`
	Detail      types.Detail   `json:"detail,omitempty" yaml:"detail,omitempty"`
	Source      string         `json:"source,omitempty" yaml:"source,omitempty"`
	Destination string         `json:"destination,omitempty" yaml:"destination,omitempty"`
	Command     string         `json:"command,omitempty" yaml:"command,omitempty"`

	// Summary fields
	Mode   types.CommandMode `json:"mode,omitempty" yaml:"mode,omitempty"`
	RunID  string            `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	DryRun bool              `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Counts map[string]int    `json:"counts,omitempty" yaml:"counts,omitempty"`

	// Error fields
	Code    errors.ErrorCode       `json:"code,omitempty" yaml:"code,omitempty"`
	Message string                 `json:"message,omitempty" yaml:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

type encoder interface {
	Encode(v interface{}) error
}

// StructuredReporter writes one record per event as soon as it happens.
type StructuredReporter struct {
	enc    encoder
	err    error
	closed bool
}

// NewJSONReporter writes newline-delimited JSON.
func NewJSONReporter(out io.Writer) *StructuredReporter {
	return &StructuredReporter{enc: json.NewEncoder(out)}
}

// NewYAMLReporter writes a stream of YAML documents.
func NewYAMLReporter(out io.Writer) *StructuredReporter {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	return &StructuredReporter{enc: enc}
}

func (r *StructuredReporter) Report(action types.Action) {
	r.emit(Record{
		Type:        RecordAction,
		Category:    action.Category,
		Detail:      action.Detail,
		Source:      action.Source,
		Destination: action.Destination,
	})
}

func (r *StructuredReporter) Command(line string) {
	r.emit(Record{Type: RecordCommand, Command: line})
}

func (r *StructuredReporter) Finish(result *core.RunResult) error {
	r.emit(Record{
		Type:   RecordSummary,
		Mode:   result.Mode,
		RunID:  result.RunID,
		DryRun: result.RunMode.DryRun,
		Counts: result.Counts,
	})
	return r.close()
}

func (r *StructuredReporter) RenderError(err error) error {
	r.emit(Record{
		Type:    RecordError,
		Code:    errors.GetErrorCode(err),
		Message: err.Error(),
		Details: errors.GetErrorDetails(err),
	})
	return r.close()
}

func (r *StructuredReporter) emit(rec Record) {
	if r.err != nil || r.closed {
		return
	}
	r.err = r.enc.Encode(rec)
}

// close flushes the YAML encoder. Records emitted afterwards are dropped.
func (r *StructuredReporter) close() error {
	if r.closed {
		return r.err
	}
	r.closed = true
	if c, ok := r.enc.(io.Closer); ok {
		if err := c.Close(); err != nil && r.err == nil {
			r.err = err
		}
	}
	return r.err
}

var _ Reporter = (*StructuredReporter)(nil)
