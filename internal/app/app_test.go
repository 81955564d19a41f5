package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRunAbortsWhenNoNamedFileOpens(t *testing.T) {
	dir := t.TempDir()
	missing := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	}

	err := Run(context.Background(), Options{
		Paths:     missing,
		PrefsPath: filepath.Join(dir, "prefs.toml"),
	})
	if err == nil {
		t.Fatal("Run() = nil, want the open error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Run() error = %v, want a not-exist open error", err)
	}
}

func TestRunRejectsTerminalStdinWithoutPaths(t *testing.T) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		t.Skip("no controlling terminal")
	}
	defer tty.Close()

	stdin := os.Stdin
	os.Stdin = tty
	defer func() { os.Stdin = stdin }()

	if err := Run(context.Background(), Options{}); err == nil {
		t.Error("Run() = nil, want the missing filename error")
	}
}
