package store

import "fmt"

type FailureKind int

const (
	// FetchFailure blocks the main pane until a fetch succeeds.
	FetchFailure FailureKind = iota + 1
	// SaveFailure leaves the pending edit untouched so it can be retried.
	SaveFailure
	DeleteFailure
)

func (k FailureKind) String() string {
	switch k {
	case FetchFailure:
		return "fetch"
	case SaveFailure:
		return "save"
	case DeleteFailure:
		return "delete"
	}
	return "unknown"
}

// Failure is the single user-facing error message. A new failure replaces
// the previous one.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func failureMessage(kind FailureKind, err error) string {
	switch kind {
	case FetchFailure:
		return fmt.Sprintf("Failed to load notes: %v", err)
	case SaveFailure:
		return fmt.Sprintf("Failed to save note: %v", err)
	case DeleteFailure:
		return fmt.Sprintf("Failed to delete note: %v", err)
	}
	return err.Error()
}
