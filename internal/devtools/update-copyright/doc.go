// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Update-copyright bumps the copyright year in the app's string resources.

# Usage

	$ go tool update-copyright [flags] [file...]

By default it replaces every "2025" with "2026" in the strings.xml of the
default values directory and of each translation (ar, bg, de, es, fr, hi, nl,
pt, ru, tr, zh-rCN) under app/src/main/res. If files are given, only they are
processed, relative to the project root.

Files that don't exist or don't contain the old year are left alone. An error
on one file is reported and doesn't stop processing of the others; the tool
exits with a non-zero status if any file failed.

It must be run from the Android project root (the directory containing
settings.gradle.kts), unless the -root flag is set.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
