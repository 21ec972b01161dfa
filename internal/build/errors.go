package build

import "fmt"

// OutputWriteError means the feature text was produced but could not be
// persisted.
type OutputWriteError struct {
	Document string
	Path     string
	Err      error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("%s: writing %s: %v", e.Document, e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
