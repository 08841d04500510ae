package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/RileyTheRiler/Speed-Reader/internal/config"
)

// run executes the root command with args and stdin and returns stdout
// and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"tokenize", "play", "estimate", "presets"}
	for _, name := range want {
		found := false

		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}

		if !found {
			t.Errorf("expected subcommand %q not found in root", name)
		}
	}
}

func TestNewRootCmd_HasPersistentFlags(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"config", "wpm", "preset", "log-level", "log-file"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s persistent flag to be registered", name)
		}
	}
}

func TestSetupLogger_DoesNotPanic(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "not-a-level"} {
		if err := setupLogger(level, ""); err != nil {
			t.Errorf("setupLogger(%q) error = %v", level, err)
		}
	}
}

func TestRequireConfig_FailsWhenNotInitialized(t *testing.T) {
	orig := activeCfg

	t.Cleanup(func() { activeCfg = orig })

	activeCfg = config.Config{}

	_, err := requireConfig()
	if err == nil {
		t.Fatal("expected error when config is not loaded")
	}
}

func TestRoot_InvalidConfigRejected(t *testing.T) {
	_, _, err := run(t, "", "estimate", "--text=hi", "--chunk-size=0")
	if err == nil || !strings.Contains(err.Error(), "chunk_size") {
		t.Fatalf("Execute() error = %v; want chunk_size validation error", err)
	}
}

func TestRoot_UnknownPreset(t *testing.T) {
	_, _, err := run(t, "", "estimate", "--text=hi", "--preset=ludicrous")
	if !errors.Is(err, config.ErrUnknownPreset) {
		t.Fatalf("Execute() error = %v; want ErrUnknownPreset", err)
	}
}
