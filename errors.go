package screenreport

import (
	"errors"
	"fmt"
)

// Sentinel errors for report generation failures.
var (
	ErrEmptyFileName = errors.New("cannot export to an empty file")
	ErrNoScreenplay  = errors.New("no document available to export")
	ErrNoReport      = errors.New("no report to generate")
	ErrUnknownReport = errors.New("unknown report")
	ErrUnknownField  = errors.New("unknown field")
)

// Kind classifies a ReportError.
type Kind int

const (
	UnknownError    Kind = iota
	ValidationError      // missing or invalid input; nothing was written
	IOError              // the output could not be opened, painted or written
	RenderError          // the report failed to build its document
)

func (k Kind) String() string {
	switch k {
	case ValidationError:
		return "validation"
	case IOError:
		return "io"
	case RenderError:
		return "render"
	default:
		return "unknown"
	}
}

// ReportError represents an error that occurred during a specific step of
// report generation.
type ReportError struct {
	Op   string // step, e.g. "validate", "open", "print"
	Kind Kind
	Path string // output file, if known
	Err  error
}

func (e *ReportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("screenreport.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("screenreport.%s: %s error", e.Op, e.Kind)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first ReportError in err's chain, or
// UnknownError.
func KindOf(err error) Kind {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Kind
	}
	return UnknownError
}

func validationError(op string, err error) *ReportError {
	return &ReportError{Op: op, Kind: ValidationError, Err: err}
}

func renderError(err error) *ReportError {
	return &ReportError{Op: "render", Kind: RenderError, Err: err}
}

func ioError(op, path string, err error) *ReportError {
	return &ReportError{Op: op, Kind: IOError, Path: path, Err: err}
}
