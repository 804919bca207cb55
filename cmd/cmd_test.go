package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// execute runs the root command with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	// flag values and Changed marks survive between executions
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(reset)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, name, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAstCommand_Tree(t *testing.T) {
	path := writeSource(t, "main.cl", "class Main { main() : Int { 1 + 2 }; };")

	out, _, err := execute(t, "ast", path)
	if err != nil {
		t.Fatalf("ast failed: %v", err)
	}

	want := "program\n  class\n    Main\n    method\n      main\n      Int\n      +\n        1\n        2\n"
	if out != want {
		t.Errorf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestAstCommand_YamlWithPositions(t *testing.T) {
	path := writeSource(t, "main.cl", "class Main { };")

	out, _, err := execute(t, "ast", "--format", "yaml", "--positions", path)
	if err != nil {
		t.Fatalf("ast failed: %v", err)
	}

	for _, want := range []string{"kind: Program", "pos:", "1:1", "name: Main"} {
		if !strings.Contains(out, want) {
			t.Errorf("output has no %q:\n%s", want, out)
		}
	}
}

func TestAstCommand_ContinuesAfterFailure(t *testing.T) {
	bad := writeSource(t, "bad.cl", "class Main { x : Int };")
	good := writeSource(t, "good.cl", "class Good { };")

	out, errOut, err := execute(t, "ast", bad, good)
	if err == nil || err.Error() != "1 of 2 files failed" {
		t.Fatalf("error = %v, want 1 of 2 files failed", err)
	}

	if !strings.Contains(out, "== "+good+" ==\nprogram\n") {
		t.Errorf("good file was not printed:\n%s", out)
	}
	if !strings.Contains(errOut, "Build failed with errors:\nERROR: "+bad+":1:22: ") {
		t.Errorf("unexpected error output:\n%s", errOut)
	}
}

func TestAstCommand_UnknownFormat(t *testing.T) {
	path := writeSource(t, "main.cl", "class Main { };")

	_, _, err := execute(t, "ast", "--format", "xml", path)
	if err == nil || !strings.Contains(err.Error(), `unknown output format "xml"`) {
		t.Errorf("error = %v, want unknown output format", err)
	}
}

func TestAstCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "coolfront.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: litter\n"), 0644); err != nil {
		t.Fatal(err)
	}
	path := writeSource(t, "main.cl", "class Main { };")

	out, _, err := execute(t, "--config", configPath, "ast", path)
	if err != nil {
		t.Fatalf("ast failed: %v", err)
	}
	if !strings.Contains(out, "Program{") {
		t.Errorf("config output format was not used:\n%s", out)
	}
}

func TestAstCommand_MissingConfigGivenExplicitly(t *testing.T) {
	path := writeSource(t, "main.cl", "class Main { };")

	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "ast", path)
	if err == nil {
		t.Error("expected an error for a missing config file named on the command line")
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "main.cl", "class A { };")

	out, _, err := execute(t, "tokens", path)
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Errorf("got %d tokens, want 6:\n%s", len(lines), out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "coolfront "+Version+"\n") {
		t.Errorf("unexpected version output:\n%s", out)
	}
}
