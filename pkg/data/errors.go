package data

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFile is matched by every FileError.
var ErrFile = errors.New("file error")

// FileError is returned when the input file can not be opened or read.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("could not %s file %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{ErrFile, e.Err}
}

// WarningKind classifies a recoverable data problem.
type WarningKind int

const (
	IncompleteRecord WarningKind = iota + 1
	NoRecords
	CapacityExceeded
)

func (k WarningKind) String() string {
	switch k {
	case IncompleteRecord:
		return "incomplete-record"
	case NoRecords:
		return "no-records"
	case CapacityExceeded:
		return "capacity-exceeded"
	default:
		return "unknown"
	}
}

// DataWarning describes a problem in the input that did not stop the run.
type DataWarning struct {
	Kind    WarningKind
	Student string
	Message string
}

func (w DataWarning) Error() string {
	return w.Message
}

func (w DataWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}
