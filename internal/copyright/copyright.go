// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package copyright bumps the copyright year in the app's string resources.

Each listed file is rewritten only when it contains the old year; every
occurrence is replaced. Files are processed one by one and a failure on one
file never stops the rest.
*/
package copyright

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/base/logger"
)

// ErrEmptyFrom is returned when there is nothing to search for.
var ErrEmptyFrom = errors.New("copyright: empty search string")

// Locales are the translations shipped with the app, in addition to the
// default values directory.
var Locales = []string{"ar", "bg", "de", "es", "fr", "hi", "nl", "pt", "ru", "tr", "zh-rCN"}

// DefaultFiles returns the strings.xml of the default values directory and of
// every locale, relative to the resource directory res.
func DefaultFiles(res string) []string {
	files := []string{filepath.Join(res, "values", "strings.xml")}
	for _, l := range Locales {
		files = append(files, filepath.Join(res, "values-"+l, "strings.xml"))
	}
	return files
}

// Config represents an update configuration.
type Config struct {
	// Dir is the directory relative paths in Files are resolved against. If
	// empty, uses the current directory.
	Dir string
	// Files is the list of files to update. If empty, uses DefaultFiles under
	// app/src/main/res.
	Files []string
	// From is the text to replace and To is its replacement. If both are
	// empty, "2025" is replaced with "2026".
	From, To string
}

func (c *Config) setDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if len(c.Files) == 0 {
		c.Files = DefaultFiles(filepath.Join("app", "src", "main", "res"))
	}
	if c.From == "" && c.To == "" {
		c.From, c.To = "2025", "2026"
	}
}

// Status is the outcome of processing a single file.
type Status int

// Possible statuses.
const (
	Updated   Status = iota // file contained From and was rewritten
	Unchanged               // file exists but doesn't contain From
	NotFound                // file doesn't exist
	Failed                  // file couldn't be read or written
)

func (s Status) String() string {
	switch s {
	case Updated:
		return "updated"
	case Unchanged:
		return "unchanged"
	case NotFound:
		return "not found"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result describes what happened to a single file.
type Result struct {
	Path   string
	Status Status
	Err    error // set only if Status is Failed
}

// Update replaces c.From with c.To in every file of c.Files and returns one
// result per file, in order. It returns an error only if the configuration is
// invalid; per-file errors are reported in results.
func Update(ctx context.Context, c *Config) ([]Result, error) {
	c.setDefaults()
	if c.From == "" {
		return nil, ErrEmptyFrom
	}

	results := make([]Result, 0, len(c.Files))
	for _, file := range c.Files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.Dir, path)
		}

		res := Result{Path: path}
		res.Status, res.Err = updateFile(path, []byte(c.From), []byte(c.To))
		switch res.Status {
		case Updated:
			logger.Info(ctx, "updating file", slog.String("path", path))
		case Unchanged:
			logger.Info(ctx, "skipping file", slog.String("path", path), slog.String("reason", c.From+" not found"))
		case NotFound:
			logger.Info(ctx, "file not found", slog.String("path", path))
		case Failed:
			logger.Error(ctx, "error processing file", slog.String("path", path), slog.Any("err", res.Err))
		}
		results = append(results, res)
	}

	logger.Info(ctx, "copyright update complete")
	return results, nil
}

func updateFile(path string, from, to []byte) (Status, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NotFound, nil
	}
	if err != nil {
		return Failed, err
	}
	if info.IsDir() {
		return Failed, fmt.Errorf("%s: is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Failed, err
	}
	if !bytes.Contains(content, from) {
		return Unchanged, nil
	}

	if err := os.WriteFile(path, bytes.ReplaceAll(content, from, to), info.Mode().Perm()); err != nil {
		return Failed, err
	}
	return Updated, nil
}

// Failures returns the errors of failed results joined together, or nil if
// nothing failed.
func Failures(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Status == Failed {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
