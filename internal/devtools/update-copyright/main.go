// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"

	"go.acesur.dev/solarpvtracker/internal/copyright"
	"go.acesur.dev/solarpvtracker/internal/devtools"
	"go.astrophena.name/base/cli"
)

func main() { cli.Main(new(app)) }

type app struct {
	root string
	res  string
	from string
	to   string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.root, "root", "", "Android project root `dir`. Defaults to the current directory.")
	fs.StringVar(&a.res, "res", devtools.ResDir, "Resource `dir`, relative to the project root.")
	fs.StringVar(&a.from, "from", "2025", "Text to replace.")
	fs.StringVar(&a.to, "to", "2026", "Replacement text.")
}

func (a *app) Run(ctx context.Context) error {
	root, err := devtools.Root(a.root)
	if err != nil {
		return err
	}

	files := cli.GetEnv(ctx).Args
	if len(files) == 0 {
		files = copyright.DefaultFiles(a.res)
	}

	results, err := copyright.Update(ctx, &copyright.Config{
		Dir:   root,
		Files: files,
		From:  a.from,
		To:    a.to,
	})
	if err != nil {
		return err
	}
	return copyright.Failures(results)
}
