package build

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Document is one source file and the feature file generated from it.
type Document struct {
	Name       string // slash separated path relative to the source dir, without extension
	SourcePath string
	TargetPath string
}

// Discover finds every file with extension ext below sourceDir. Hidden
// directories are skipped. Documents are returned sorted by name.
func Discover(sourceDir, outputDir, ext string) ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != sourceDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ext {
			return nil
		}
		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(strings.TrimSuffix(rel, ext))
		docs = append(docs, Document{
			Name:       name,
			SourcePath: path,
			TargetPath: filepath.Join(outputDir, filepath.FromSlash(name)+".feature"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// Outdated reports whether doc needs to be generated. Documents never built
// before are always outdated. Otherwise the source must be newer than the
// target; a missing or unreadable target counts as infinitely old. A source
// that no longer exists is never outdated.
func Outdated(doc Document, registered bool) bool {
	if !registered {
		return true
	}
	src, err := os.Stat(doc.SourcePath)
	if err != nil {
		return false
	}
	var target time.Time
	if info, err := os.Stat(doc.TargetPath); err == nil {
		target = info.ModTime()
	}
	return src.ModTime().After(target)
}
