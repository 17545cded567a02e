package services_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"proofsheet/internal/services"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestCommandExecutorStreamsLines(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts unavailable")
	}
	script := writeScript(t, "echo one\necho two 1>&2")

	var mu sync.Mutex
	var lines []string
	err := services.CommandExecutor{}.Run(context.Background(), script, nil, func(line string) {
		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("streamed %d lines, want 2: %v", len(lines), lines)
	}
}

func TestCommandExecutorNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts unavailable")
	}
	script := writeScript(t, "exit 3")

	err := services.CommandExecutor{}.Run(context.Background(), script, nil, func(string) {})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
}

func TestCommandExecutorScanErrorStillReturns(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts unavailable")
	}
	// A single line past the scanner's token limit forces a scan error; the
	// child must be killed and reaped, and the error surfaced.
	script := writeScript(t, "dd if=/dev/zero bs=1024 count=128 2>/dev/null | tr '\\0' 'a'")

	err := services.CommandExecutor{}.Run(context.Background(), script, nil, func(string) {})
	if err == nil {
		t.Fatal("expected scan error for oversized line")
	}
	if !strings.Contains(err.Error(), "scan output") {
		t.Fatalf("unexpected error: %v", err)
	}
}
