package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nekolang/neko/internal/interp"
)

func TestEvalReplLinePrintsNonNoneResult(t *testing.T) {
	var buf bytes.Buffer
	interpreter := interp.New(&buf)

	output := captureStdout(t, func() {
		evalReplLine(interpreter, `1 + 2;`)
	})
	if strings.TrimSpace(output) != "3" {
		t.Errorf("got %q, want 3", output)
	}
}

func TestEvalReplLineSuppressesNoneResult(t *testing.T) {
	var buf bytes.Buffer
	interpreter := interp.New(&buf)

	output := captureStdout(t, func() {
		evalReplLine(interpreter, `let x = 1;`)
	})
	if output != "" {
		t.Errorf("got %q, want no printed value for a None-valued declaration", output)
	}
}

func TestEvalReplLineKeepsPersistentStateAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	interpreter := interp.New(&buf)

	_ = captureStdout(t, func() { evalReplLine(interpreter, `let x = 10;`) })
	output := captureStdout(t, func() { evalReplLine(interpreter, `x + 5;`) })
	if strings.TrimSpace(output) != "15" {
		t.Errorf("got %q, want 15 (x should still be bound)", output)
	}
}

func TestLoadReplFileExecutesFileContents(t *testing.T) {
	var buf bytes.Buffer
	interpreter := interp.New(&buf)

	path := filepath.Join(t.TempDir(), "script.neko")
	if err := os.WriteFile(path, []byte(`print("loaded");`), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	output := captureStdout(t, func() {
		loadReplFile(interpreter, path)
	})
	if !strings.Contains(output, "loaded") {
		t.Errorf("got %q, want output containing 'loaded'", output)
	}
}

func TestLoadReplFileReportsMissingFile(t *testing.T) {
	var buf bytes.Buffer
	interpreter := interp.New(&buf)

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	loadReplFile(interpreter, filepath.Join(t.TempDir(), "missing.neko"))
	w.Close()
	os.Stderr = oldStderr

	var errBuf bytes.Buffer
	errBuf.ReadFrom(r)
	if !strings.Contains(errBuf.String(), "could not read") {
		t.Errorf("got stderr %q, want a 'could not read' message", errBuf.String())
	}
}

func TestPrintReplHelpListsCommands(t *testing.T) {
	output := captureStdout(t, printReplHelp)
	for _, want := range []string{".exit", ".help", ".load"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q: %q", want, output)
		}
	}
}
