// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.astrophena.name/base/unwrap"
)

// ResDir is the resource directory of the app module, relative to the
// project root.
var ResDir = filepath.Join("app", "src", "main", "res")

// rootMarkers are the files Gradle requires at the root of an Android project.
var rootMarkers = []string{"settings.gradle.kts", "settings.gradle"}

// IsRoot reports whether dir is the root of an Android project.
func IsRoot(dir string) (bool, error) {
	for _, m := range rootMarkers {
		_, err := os.Stat(filepath.Join(dir, m))
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
	}
	return false, nil
}

// EnsureRoot checks that the current working directory is at the Android
// project root and panics if it doesn't.
func EnsureRoot() {
	wd := unwrap.Value(os.Getwd())
	if !unwrap.Value(IsRoot(wd)) {
		panic("Are you at the Android project root?")
	}
}

// Root returns the Android project root. If dir is empty, the current working
// directory must be the root, otherwise dir must be.
func Root(dir string) (string, error) {
	if dir == "" {
		EnsureRoot()
		return ".", nil
	}
	ok, err := IsRoot(dir)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s is not an Android project root", dir)
	}
	return dir, nil
}
