package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/surface"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBackends(t *testing.T) {
	out, err := execute(t, "backends")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 || lines[0] != "image\tavailable" {
		t.Errorf("backends output = %q", out)
	}
}

func TestBackendsUnavailableReason(t *testing.T) {
	surface.Register(surface.Backend{
		Name:     "offline",
		Priority: -1,
		New:      func(surface.Options) (ggchart.Surface, error) { return nil, nil },
		Check:    func() error { return errors.New("no display") },
	})
	out, err := execute(t, "backends")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "offline\tunavailable: no display\n") {
		t.Errorf("backends output = %q, want the unavailable reason", out)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "chart.toml")
	src := "[viewport]\nxmax = 1\n\n[surface]\nwidth = 32\nheight = 32\n\n[[series]]\nx = [0, 1]\ny = [0, 1]\n"
	if err := os.WriteFile(in, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "render", in)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	want := filepath.Join(dir, "chart.png")
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Error(err)
	}

	custom := filepath.Join(dir, "custom.png")
	if _, err := execute(t, "render", in, "-o", custom); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(custom); err != nil {
		t.Error(err)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := execute(t, "render"); err == nil {
		t.Error("render without arguments should fail")
	}
	if _, err := execute(t, "render", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("render of a missing file should fail")
	}
}
