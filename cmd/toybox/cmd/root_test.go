package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const exitSample = 8

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return &stdout, &stderr
}

func TestExecuteStatusIgnoresArgs(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"positional args", []string{"1", "2", "3"}},
		{"unknown flags", []string{"--frobnicate", "x"}},
		{"version word", []string{"version"}},
		{"help word", []string{"help"}},
		{"completion word", []string{"completion", "bash"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr := captureOutput(t)
			if code := Execute(tc.args); code != exitSample {
				t.Fatalf("expected exit %d, got %d (stderr %q)", exitSample, code, stderr.String())
			}
			if stdout.Len() != 0 || stderr.Len() != 0 {
				t.Fatalf("expected no output, got stdout %q stderr %q", stdout.String(), stderr.String())
			}
		})
	}
}

func TestExecuteHelpKeepsStatus(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			stdout, _ := captureOutput(t)
			if code := Execute([]string{flag}); code != exitSample {
				t.Fatalf("expected exit %d, got %d", exitSample, code)
			}
			if !strings.Contains(stdout.String(), "Usage:") {
				t.Fatalf("expected usage output, got %q", stdout.String())
			}
		})
	}
}

func TestExecuteVersionKeepsStatus(t *testing.T) {
	stdout, _ := captureOutput(t)

	if code := Execute([]string{"--version"}); code != exitSample {
		t.Fatalf("expected exit %d, got %d", exitSample, code)
	}
	out := stdout.String()
	if !strings.Contains(out, "toybox") || !strings.Contains(out, "version "+Version) {
		t.Fatalf("expected version output, got %q", out)
	}
}

func TestExecuteVerboseLogsIntermediates(t *testing.T) {
	_, stderr := captureOutput(t)

	if code := Execute([]string{"--verbose"}); code != exitSample {
		t.Fatalf("expected exit %d, got %d", exitSample, code)
	}

	out := stderr.String()
	for _, want := range []string{"difference=-1", "truncated=9", "status=8"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in stderr %q", want, out)
		}
	}
}

func TestExecuteFlagsDoNotLeakBetweenRuns(t *testing.T) {
	cases := []struct {
		name  string
		first []string
	}{
		{"verbose", []string{"-v"}},
		{"short help", []string{"-h"}},
		{"long help", []string{"--help"}},
		{"version", []string{"--version"}},
		{"log level", []string{"--log-level", "debug", "extra"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr := captureOutput(t)

			Execute(tc.first)
			stdout.Reset()
			stderr.Reset()

			if code := Execute(nil); code != exitSample {
				t.Fatalf("expected exit %d, got %d", exitSample, code)
			}
			if stdout.Len() != 0 || stderr.Len() != 0 {
				t.Fatalf("expected flags to be reset, got stdout %q stderr %q", stdout.String(), stderr.String())
			}
		})
	}
}

func TestExecuteDebugLevelFromConfig(t *testing.T) {
	_, stderr := captureOutput(t)

	path := filepath.Join(t.TempDir(), "toybox.json")
	if err := os.WriteFile(path, []byte(`{"version":1,"log":{"level":"debug"}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if code := Execute([]string{"--config", path, "extra"}); code != exitSample {
		t.Fatalf("expected exit %d, got %d", exitSample, code)
	}
	if !strings.Contains(stderr.String(), "ignoring arguments") {
		t.Fatalf("expected debug record, got %q", stderr.String())
	}
}

func TestExecuteShellErrorsKeepStatus(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	cases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing config", []string{"--config", missing}, "config not found"},
		{"invalid log level", []string{"--log-level", "loud"}, "invalid --log-level"},
		{"flag without value", []string{"--config"}, "flag needs an argument"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr := captureOutput(t)
			if code := Execute(tc.args); code != exitSample {
				t.Fatalf("expected exit %d, got %d", exitSample, code)
			}
			if !strings.Contains(stderr.String(), tc.wantErr) {
				t.Fatalf("expected %q on stderr, got %q", tc.wantErr, stderr.String())
			}
		})
	}
}

func TestExecuteCompletionRequestKeepsStatus(t *testing.T) {
	captureOutput(t)

	if code := Execute([]string{"__complete", ""}); code != exitSample {
		t.Fatalf("expected exit %d, got %d", exitSample, code)
	}
}
