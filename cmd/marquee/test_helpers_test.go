package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/catalog"
)

type cliTestEnv struct {
	baseDir    string
	outRoot    string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	outRoot := filepath.Join(base, "runs")
	logDir := filepath.Join(base, "logs")
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, outRoot, logDir)

	return &cliTestEnv{
		baseDir:    base,
		outRoot:    outRoot,
		configPath: configPath,
	}
}

func writeTestConfig(t *testing.T, path, outRoot, logDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nout_root = %q\nlog_dir = %q\n\n[logging]\nlevel = \"error\"\n",
		outRoot,
		logDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func writeCatalogFixture(t *testing.T, path string, snapshot catalog.Snapshot) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer file.Close()
	if err := snapshot.WriteCSV(file); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func intPtr(v int) *int { return &v }
