package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWinner flags a winner column that is neither Home nor Away.
	ErrUnknownWinner = errors.New("unrecognized winner indicator")
	// ErrFieldCount flags a row with too few columns.
	ErrFieldCount = errors.New("wrong field count")
	// ErrBadDate flags a date column that no supported layout accepts.
	ErrBadDate = errors.New("unparsable date")
)

// RowError reports a malformed source row. Any RowError aborts the run: skipping a
// game would corrupt every later record.
type RowError struct {
	Source string
	Line   int
	Err    error
}

func (e *RowError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// AsRowError attempts to unwrap an error into a RowError.
func AsRowError(err error) (*RowError, bool) {
	var rowErr *RowError
	if errors.As(err, &rowErr) {
		return rowErr, true
	}
	return nil, false
}
