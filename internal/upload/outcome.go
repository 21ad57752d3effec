package upload

import (
	"encoding/json"

	"github.com/wasmdash/wasmdash-client/internal/signer"
)

type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "none"
	}
}

// Outcome is the result of the last attempt: either a result or an error
// message, never both.
type Outcome struct {
	kind      OutcomeKind
	attemptID string
	result    signer.UploadResult
	err       string
}

func Succeeded(attemptID string, res signer.UploadResult) Outcome {
	return Outcome{kind: OutcomeSucceeded, attemptID: attemptID, result: res}
}

func Failed(attemptID, msg string) Outcome {
	return Outcome{kind: OutcomeFailed, attemptID: attemptID, err: msg}
}

func (o Outcome) Kind() OutcomeKind { return o.kind }

func (o Outcome) AttemptID() string { return o.attemptID }

// Result returns the upload result when the attempt succeeded.
func (o Outcome) Result() (signer.UploadResult, bool) {
	if o.kind != OutcomeSucceeded {
		return signer.UploadResult{}, false
	}
	return o.result, true
}

// Error is the message to display, empty unless the attempt failed.
func (o Outcome) Error() string {
	if o.kind != OutcomeFailed {
		return ""
	}
	return o.err
}

type outcomeJSON struct {
	Kind      string               `json:"kind"`
	AttemptID string               `json:"attemptId,omitempty"`
	Result    *signer.UploadResult `json:"result,omitempty"`
	Error     string               `json:"error,omitempty"`
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	out := outcomeJSON{
		Kind:      o.kind.String(),
		AttemptID: o.attemptID,
		Error:     o.Error(),
	}
	if res, ok := o.Result(); ok {
		out.Result = &res
	}
	return json.Marshal(out)
}
