package itinerary

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidates indicates nothing is left to schedule after selection.
	ErrNoCandidates = errors.New("no candidate places")

	// ErrNoStructuredBlock indicates the generated text contains no opening brace.
	ErrNoStructuredBlock = errors.New("no structured block in generated text")

	// ErrUnbalancedBlock indicates the first block is never closed.
	ErrUnbalancedBlock = errors.New("unbalanced structured block in generated text")

	// ErrSchema indicates the extracted block does not have the itinerary shape.
	ErrSchema = errors.New("structured block does not match the itinerary schema")

	// ErrInvalidTripParameters indicates a non-positive trip length.
	ErrInvalidTripParameters = errors.New("invalid trip parameters")

	// ErrGeneration indicates the text generation collaborator failed or timed out.
	ErrGeneration = errors.New("text generation failed")
)

const maxSnippetLen = 1000

// PlanError carries the raw text that caused a pipeline failure.
type PlanError struct {
	Err     error
	Snippet string
	Cause   error
}

func newPlanError(kind error, raw string, cause error) *PlanError {
	if len(raw) > maxSnippetLen {
		raw = raw[:maxSnippetLen]
	}
	return &PlanError{Err: kind, Snippet: raw, Cause: cause}
}

// WrapGenerationError marks err as a generation failure.
func WrapGenerationError(err error) error {
	return newPlanError(ErrGeneration, "", err)
}

func (e *PlanError) Error() string {
	msg := e.Err.Error()
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Snippet != "" {
		msg = fmt.Sprintf("%s (raw: %q)", msg, e.Snippet)
	}
	return msg
}

func (e *PlanError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
