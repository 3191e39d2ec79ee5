package main

import (
	"bytes"
	"strings"
	"testing"

	"marquee/internal/testsupport"
)

type cliTestEnv struct {
	configPath string
	sourcePath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	for _, key := range []string{"MARQUEE_SOURCE_PATH", "MARQUEE_SOURCE_FORMAT", "MARQUEE_SOURCE_TABLE", "MARQUEE_LOG_LEVEL", "MARQUEE_LOG_FORMAT", "MARQUEE_LOG_DIR"} {
		t.Setenv(key, "")
	}

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", base)

	return &cliTestEnv{
		configPath: testsupport.WriteConfig(t, cfg),
		sourcePath: cfg.Source.Path,
		baseDir:    base,
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

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
