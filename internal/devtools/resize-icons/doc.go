// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Resize-icons generates the launcher icons of the app.

# Usage

	$ go tool resize-icons [flags] <input_image_file>

This tool resizes the provided input image (JPEG, PNG, GIF, BMP, TIFF or WebP)
to the size of each mipmap bucket and saves two PNG images per bucket in
app/src/main/res:

	mipmap-mdpi      48x48
	mipmap-hdpi      72x72
	mipmap-xhdpi     96x96
	mipmap-xxhdpi    144x144
	mipmap-xxxhdpi   192x192

ic_launcher.png is the resized image and ic_launcher_round.png is the same
image with a circular mask applied. Missing bucket directories are created.

With the -watch flag the icons are generated again each time the input image
changes, until the tool is interrupted.

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

func init() {
	cli.SetDocComment(doc)
}
