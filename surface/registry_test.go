// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
)

func newRecorder(opts Options) (ggchart.Surface, error) {
	return recording.NewRecorder(opts.Width, opts.Height), nil
}

func TestBackendsOrder(t *testing.T) {
	r := newRegistry()
	r.register(Backend{Name: "low", Priority: 10, New: newRecorder})
	r.register(Backend{Name: "high", Priority: 100, New: newRecorder})
	r.register(Backend{Name: "mid", Priority: 50, New: newRecorder})
	r.register(Backend{Name: "also-mid", Priority: 50, New: newRecorder})

	want := []string{"high", "also-mid", "mid", "low"}
	got := r.status()
	if len(got) != len(want) {
		t.Fatalf("status() = %+v, want %d backends", got, len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("status()[%d] = %s, want %s", i, got[i].Name, want[i])
		}
	}
}

func TestBackendsReportReason(t *testing.T) {
	noGPU := errors.New("no adapter")
	r := newRegistry()
	r.register(Backend{Name: "gpu", Priority: 100, New: newRecorder, Check: func() error { return noGPU }})
	r.register(Backend{Name: "broken", Priority: 50})
	r.register(Backend{Name: "cpu", Priority: 10, New: newRecorder})

	st := r.status()
	if !errors.Is(st[0].Err, noGPU) || st[0].Available() {
		t.Errorf("gpu status = %+v, want the Check error", st[0])
	}
	if st[1].Available() {
		t.Error("backend without a constructor reported available")
	}
	if !st[2].Available() {
		t.Errorf("cpu status = %+v, want available", st[2])
	}
}

func TestOpenByName(t *testing.T) {
	r := newRegistry()
	r.register(Backend{Name: "rec", New: newRecorder})

	s, err := r.open("rec", Options{Width: 50, Height: 40})
	if err != nil {
		t.Fatalf("open() error = %v", err)
	}
	rec, ok := s.(*recording.Recorder)
	if !ok {
		t.Fatalf("surface is %T, want *recording.Recorder", s)
	}
	if rec.Width() != 50 || rec.Height() != 40 {
		t.Errorf("size = %dx%d, want 50x40", rec.Width(), rec.Height())
	}
}

func TestOpenErrors(t *testing.T) {
	noGPU := errors.New("no adapter")
	failed := errors.New("creation failed")
	r := newRegistry()
	r.register(Backend{Name: "gpu", New: newRecorder, Check: func() error { return noGPU }})
	r.register(Backend{Name: "failing", New: func(Options) (ggchart.Surface, error) { return nil, failed }})

	tests := []struct {
		name string
		want error
	}{
		{"svg", ErrUnknownBackend},
		{"gpu", noGPU},
		{"failing", failed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.open(tt.name, Options{})
			if !errors.Is(err, tt.want) {
				t.Errorf("open(%q) error = %v, want %v", tt.name, err, tt.want)
			}
			var berr *BackendError
			if !errors.As(err, &berr) || berr.Name != tt.name {
				t.Errorf("open(%q) error = %v, want BackendError naming it", tt.name, err)
			}
		})
	}
}

func TestOpenBestFallsThrough(t *testing.T) {
	noGPU := errors.New("no adapter")
	r := newRegistry()

	if _, err := r.open("", Options{}); !errors.Is(err, ErrNoBackend) {
		t.Errorf("open() on empty registry = %v, want ErrNoBackend", err)
	}

	var tried []string
	r.register(Backend{Name: "gpu", Priority: 100, New: newRecorder, Check: func() error { return noGPU }})
	r.register(Backend{Name: "failing", Priority: 50, New: func(Options) (ggchart.Surface, error) {
		tried = append(tried, "failing")
		return nil, errors.New("creation failed")
	}})
	if _, err := r.open("", Options{}); !errors.Is(err, ErrNoBackend) || !errors.Is(err, noGPU) {
		t.Errorf("open() = %v, want ErrNoBackend carrying each reason", err)
	}

	r.register(Backend{Name: "cpu", Priority: 10, New: func(opts Options) (ggchart.Surface, error) {
		tried = append(tried, "cpu")
		return newRecorder(opts)
	}})
	tried = nil
	s, err := r.open("", Options{Width: 1, Height: 1})
	if err != nil || s == nil {
		t.Fatalf("open() = %v, %v, want fallback surface", s, err)
	}
	if len(tried) != 2 || tried[0] != "failing" || tried[1] != "cpu" {
		t.Errorf("tried = %v, want [failing cpu]", tried)
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := newRegistry()
	r.register(Backend{Name: "rec", Priority: 10, New: newRecorder})
	r.register(Backend{Name: "rec", Priority: 50, New: newRecorder})

	st := r.status()
	if len(st) != 1 || st[0].Priority != 50 {
		t.Errorf("status() = %+v, want one backend at priority 50", st)
	}
}

func TestBuiltinBackends(t *testing.T) {
	st := Backends()
	if len(st) < 2 || st[0].Name != "image" || !st[0].Available() {
		t.Fatalf("Backends() = %+v, want image first and available", st)
	}

	s, err := Open("", DefaultOptions(100, 80))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	img, ok := s.(*ImageSurface)
	if !ok {
		t.Fatalf("default surface is %T, want *ImageSurface", s)
	}
	if img.Width() != 100 || img.Height() != 80 {
		t.Errorf("size = %dx%d, want 100x80", img.Width(), img.Height())
	}

	rec, err := Open("recording", DefaultOptions(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := rec.(*recording.Recorder); !ok {
		t.Errorf("recording backend is %T", rec)
	}
}

func TestBackendErrorMessage(t *testing.T) {
	err := &BackendError{Name: "svg", Err: ErrUnknownBackend}
	if got, want := err.Error(), `surface: backend "svg": surface: unknown backend`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
