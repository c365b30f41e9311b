package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordpipe/internal/pipeline"
)

// writeTestConfig writes a config that keeps all wordpipe state inside the
// test's temp directory and returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	contents := `
[paths]
data_dir = "` + filepath.Join(base, "data") + `"
log_dir = "` + filepath.Join(base, "logs") + `"

[logging]
level = "error"
`
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCountCommandPrintsTotal(t *testing.T) {
	configPath := writeTestConfig(t)
	inputPath := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(inputPath, []byte("hi  there\nfriend"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "count", inputPath)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if !strings.Contains(out, "The total number of words is 3.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCountCommandChunkSizeOverride(t *testing.T) {
	configPath := writeTestConfig(t)
	inputPath := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(inputPath, []byte("hi  there\nfriend"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "count", "--chunk-size", "1", inputPath)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if !strings.Contains(out, "The total number of words is 3.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCountCommandMissingFile(t *testing.T) {
	configPath := writeTestConfig(t)
	missing := filepath.Join(t.TempDir(), "absent.txt")

	out, err := runCommand(t, "--config", configPath, "count", missing)
	if err == nil {
		t.Fatalf("expected failure, output: %q", out)
	}
	if !errors.Is(err, pipeline.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if strings.Contains(out, "The total number of words") {
		t.Fatalf("failure must not print a count: %q", out)
	}
}

func TestCountCommandEmptyFile(t *testing.T) {
	configPath := writeTestConfig(t)
	inputPath := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(inputPath, nil, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "count", inputPath)
	if err == nil {
		t.Fatalf("expected failure, output: %q", out)
	}
	if !errors.Is(err, pipeline.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestCountCommandRequiresArgument(t *testing.T) {
	configPath := writeTestConfig(t)
	if _, err := runCommand(t, "--config", configPath, "count"); err == nil {
		t.Fatal("expected usage error for missing file argument")
	}
}

func TestHistoryRecordsRuns(t *testing.T) {
	configPath := writeTestConfig(t)
	inputPath := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(inputPath, []byte("alpha beta"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if _, err := runCommand(t, "--config", configPath, "count", inputPath); err != nil {
		t.Fatalf("count failed: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, inputPath) {
		t.Fatalf("history output missing run: %q", out)
	}
	if !strings.Contains(out, "2") {
		t.Fatalf("history output missing word count: %q", out)
	}

	out, err = runCommand(t, "--config", configPath, "history", "clear")
	if err != nil {
		t.Fatalf("history clear failed: %v", err)
	}
	if !strings.Contains(out, "Removed 1 run(s)") {
		t.Fatalf("unexpected clear output: %q", out)
	}

	out, err = runCommand(t, "--config", configPath, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet") {
		t.Fatalf("expected empty history, got: %q", out)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("unexpected init output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}

	validatable := writeTestConfig(t)
	out, err = runCommand(t, "--config", validatable, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected validate output: %q", out)
	}
}

func TestConfigPathCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", configPath, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(out, configPath) {
		t.Fatalf("unexpected output: %q", out)
	}
}
