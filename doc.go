// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package solarpvtracker holds development tools that maintain the assets of the
SolarPV Tracker Android app.

Tools are run with go tool from the root of the Android project:

	$ go tool update-copyright  # bump the copyright year in strings.xml files
	$ go tool resize-icons logo.jpg  # regenerate launcher icons

See the documentation of each tool in internal/devtools for details.
*/
package solarpvtracker

//go:generate go tool addcopyright
