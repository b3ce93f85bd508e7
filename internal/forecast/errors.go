package forecast

import (
	"errors"
	"fmt"
)

// ErrMissingAddress is returned when a request arrives without an address.
var ErrMissingAddress = errors.New("address parameter is required")

// Stage identifies the pipeline stage that failed.
type Stage int

const (
	StageAddress Stage = iota
	StageGeocode
	StageLocate
	StageFetch
	StageSummarize
)

func (s Stage) String() string {
	switch s {
	case StageAddress:
		return "address"
	case StageGeocode:
		return "geocode"
	case StageLocate:
		return "locate"
	case StageFetch:
		return "fetch"
	case StageSummarize:
		return "summarize"
	default:
		return "unknown"
	}
}

// PipelineError wraps a stage failure. The first failing stage terminates
// the request; there is no partial recovery. Upstream detail stays in the
// wrapped error for server-side logs, while UserMessage exposes only a
// coarse reason to the caller.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// UserMessage returns the short reason surfaced to the caller.
func (e *PipelineError) UserMessage() string {
	switch e.Stage {
	case StageAddress:
		return "address parameter is required"
	case StageGeocode:
		return "error geocoding address"
	case StageLocate:
		return "error getting forecast URL"
	case StageFetch:
		return "error getting forecast periods"
	case StageSummarize:
		return "error summarizing forecast"
	default:
		return "internal error"
	}
}
