package glucolog

import (
	"bytes"
	"path/filepath"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCommand(t, "--help")
	if len(out) == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glucolog.db")
	food := filepath.Join(t.TempDir(), "missing.json")
	for i := 0; i < 2; i++ {
		runCommand(t, "--db", path, "--food-data", food, "init")
	}
}
