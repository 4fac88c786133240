package proteomics

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Parse when the text has no non-blank line.
	ErrEmptyInput = errors.New("file is empty")
	// ErrBlankName rejects a sample group name that is empty after trimming.
	ErrBlankName = errors.New("please enter a sample group name")
	// ErrDuplicateName rejects a sample group that is already registered.
	ErrDuplicateName = errors.New("this sample group already exists")
	// ErrNoData is returned when an export is attempted without a dataset or groups.
	ErrNoData = errors.New("please upload a file and add at least one sample group")
	// ErrSheetExists rejects a sheet whose name is already used in the workbook,
	// compared case-insensitively.
	ErrSheetExists = errors.New("sheet name already used")
)

// ExportError wraps any failure that happened while building, serializing
// or saving a workbook.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export workbook: %v", e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
