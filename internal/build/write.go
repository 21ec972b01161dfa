package build

import (
	"os"
	"path/filepath"
)

// writeFeature replaces doc.TargetPath with content. The text is written to a
// temporary file in the same directory and renamed into place, so readers
// never see a half written feature.
func writeFeature(doc Document, content string) error {
	dir := filepath.Dir(doc.TargetPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &OutputWriteError{Document: doc.Name, Path: doc.TargetPath, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".featgen-*")
	if err != nil {
		return &OutputWriteError{Document: doc.Name, Path: doc.TargetPath, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return &OutputWriteError{Document: doc.Name, Path: doc.TargetPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &OutputWriteError{Document: doc.Name, Path: doc.TargetPath, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return &OutputWriteError{Document: doc.Name, Path: doc.TargetPath, Err: err}
	}
	if err := os.Rename(tmp.Name(), doc.TargetPath); err != nil {
		return &OutputWriteError{Document: doc.Name, Path: doc.TargetPath, Err: err}
	}
	return nil
}
