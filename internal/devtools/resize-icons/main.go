// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"go.acesur.dev/solarpvtracker/internal/devtools"
	"go.acesur.dev/solarpvtracker/internal/icons"
	"go.astrophena.name/base/cli"
)

func main() {
	cli.Main(new(app))
}

type app struct {
	root  string
	res   string
	watch bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.root, "root", "", "Android project root `dir`. Defaults to the current directory.")
	fs.StringVar(&a.res, "res", devtools.ResDir, "Resource `dir`, relative to the project root.")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate icons when the input image changes.")
}

func (a *app) Run(ctx context.Context) error {
	root, err := devtools.Root(a.root)
	if err != nil {
		return err
	}

	args := cli.GetEnv(ctx).Args
	if len(args) != 1 {
		return fmt.Errorf("%w: want exactly one input image", cli.ErrInvalidArgs)
	}

	res := a.res
	if !filepath.IsAbs(res) {
		res = filepath.Join(root, res)
	}

	c := &icons.Config{
		Source: args[0],
		ResDir: res,
	}
	if a.watch {
		return icons.Watch(ctx, c)
	}
	return icons.Generate(ctx, c)
}
