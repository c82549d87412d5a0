// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"context"
	"image/color"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"
)

func TestWatch(t *testing.T) {
	source := writeSource(t, "source.png", 64, 64, red)
	resDir := t.TempDir()
	square := filepath.Join(resDir, "mipmap-mdpi", SquareName)

	ready := make(chan struct{})
	watchReadyHook = func() { close(ready) }
	t.Cleanup(func() { watchReadyHook = nil })

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Watch(ctx, &Config{Source: source, ResDir: resDir})
	}()

	select {
	case err := <-errCh:
		t.Fatalf("Watch returned during startup: %v", err)
	case <-ready:
	}

	// Initial generation is done before watching starts.
	if got := centerColor(t, square); got.R != 0xff || got.B != 0 {
		t.Fatalf("initial icon: want red, got %+v", got)
	}

	if err := imaging.Save(imaging.New(64, 64, blue), source); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(10 * time.Second)
	for {
		if img, err := imaging.Open(square); err == nil {
			c := color.NRGBAModel.Convert(img.At(24, 24)).(color.NRGBA)
			if c.B == 0xff && c.R == 0 {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatal("icons weren't regenerated after the source changed")
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Watch: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Watch didn't return after context cancellation")
	}
}

func TestShouldRegenerate(t *testing.T) {
	const source = "/home/user/icons/logo.jpg"

	cases := map[string]struct {
		path string
		op   fsnotify.Op
		want bool
	}{
		"source write":    {source, fsnotify.Write, true},
		"source creation": {source, fsnotify.Create, true},
		"unclean path":    {"/home/user/icons/./logo.jpg", fsnotify.Write, true},
		"write and chmod": {source, fsnotify.Write | fsnotify.Chmod, true},
		"source removal":  {source, fsnotify.Remove, false},
		"ignore chmod":    {source, fsnotify.Chmod, false},
		"ignore rename":   {source, fsnotify.Rename, false},
		"other file":      {"/home/user/icons/other.jpg", fsnotify.Write, false},
		"vim backup file": {source + "~", fsnotify.Create, false},
		"macOS garbage":   {"/home/user/icons/.DS_Store", fsnotify.Create, false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := shouldRegenerate(source, tc.path, tc.op)
			if got != tc.want {
				t.Fatalf("shouldRegenerate(%q, %q, %+v): want %v, got %v", source, tc.path, tc.op, tc.want, got)
			}
		})
	}
}

func TestDebouncer(t *testing.T) {
	var calls atomic.Int32
	d := newDebouncer(50*time.Millisecond, func() { calls.Add(1) })

	for range 5 {
		d.Do()
	}
	time.Sleep(300 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("want 1 call after a burst, got %d", got)
	}

	d.Do()
	d.Stop()
	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("want no calls after Stop, got %d", got-1)
	}
}

func centerColor(t *testing.T, path string) color.NRGBA {
	t.Helper()
	img := open(t, path)
	return color.NRGBAModel.Convert(img.At(24, 24)).(color.NRGBA)
}
