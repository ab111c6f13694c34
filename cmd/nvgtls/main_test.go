package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nvgtls/internal/diag"
	"nvgtls/internal/inspect"
	"nvgtls/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func testProject(t *testing.T) (dir, config string) {
	t.Helper()
	dir = t.TempDir()
	stdlib := filepath.Join(dir, "stdlib")
	writeFile(t, filepath.Join(stdlib, "sound.nvgt"), "class sound {}\n")
	config = filepath.Join(dir, "nvgtls.toml")
	writeFile(t, config, "[standardLibrary]\npath = '"+stdlib+"'\n")
	writeFile(t, filepath.Join(dir, "src", "main.nvgt"), "#include \"sound.nvgt\"\nint x;\nint x;\nsound s;\n")
	writeFile(t, filepath.Join(dir, "src", "ok.nvgt"), "void main() {}\n")
	return dir, config
}

func TestInspectCommandReportsErrors(t *testing.T) {
	dir, config := testProject(t)
	t.Setenv("NVGT_STDLIB", "")
	out, err := execute(t, "inspect", "--color=off", "--no-cache", "--format=pretty",
		"--config", config, "--predefined", filepath.Join(dir, "missing.predefined"),
		filepath.Join(dir, "src"))
	if !errors.Is(err, errFailed) {
		t.Fatalf("expected errFailed, got %v\n%s", err, out)
	}
	if !strings.Contains(out, "main.nvgt:3:5: ERROR SEM3001: 'x' is already declared as a variable at line 2") {
		t.Fatalf("missing duplicate diagnostic:\n%s", out)
	}
	if strings.Contains(out, "INC5001") {
		t.Fatalf("stdlib include should resolve:\n%s", out)
	}
	if !strings.Contains(out, "2 files: 1 error, 0 warnings") {
		t.Fatalf("missing summary:\n%s", out)
	}
}

func TestInspectCommandJSON(t *testing.T) {
	dir, config := testProject(t)
	t.Setenv("NVGT_STDLIB", "")
	out, err := execute(t, "inspect", "--color=off", "--no-cache", "--format=json",
		"--config", config, "--predefined", "", filepath.Join(dir, "src", "ok.nvgt"))
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var pubs []struct {
		URI         string            `json:"uri"`
		Diagnostics []json.RawMessage `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(out), &pubs); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(pubs) != 1 || !strings.HasSuffix(pubs[0].URI, "/ok.nvgt") || len(pubs[0].Diagnostics) != 0 {
		t.Fatalf("unexpected publications %+v", pubs)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := execute(t, "version", "--format=xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--format=json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Tool != "nvgtls" || payload.Version == "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestInspectStdinBuffer(t *testing.T) {
	dir, config := testProject(t)
	t.Setenv("NVGT_STDLIB", "")
	t.Cleanup(func() {
		_ = inspectCmd.Flags().Set("stdin-path", "")
		rootCmd.SetIn(nil)
	})
	mainPath := filepath.Join(dir, "src", "main.nvgt")
	rootCmd.SetIn(strings.NewReader("int y;\nint y;\n"))
	out, err := execute(t, "inspect", "--color=off", "--no-cache", "--format=pretty",
		"--config", config, "--predefined", "", "--stdin-path", mainPath, mainPath)
	if !errors.Is(err, errFailed) {
		t.Fatalf("expected errFailed, got %v\n%s", err, out)
	}
	if !strings.Contains(out, "main.nvgt:2:5: ERROR SEM3001: 'y' is already declared as a variable at line 1") {
		t.Fatalf("buffer content not inspected:\n%s", out)
	}
	if strings.Contains(out, "'x'") || !strings.Contains(out, "1 file: 1 error") {
		t.Fatalf("disk content must be ignored and inspected once:\n%s", out)
	}
}

func TestFilesOfOrdersDiagnosticsByPosition(t *testing.T) {
	res := inspect.EmptyResult("file:///proj/a.nvgt")
	at := func(line uint32) source.Location {
		pos := source.Position{Line: line}
		return source.Location{File: res.URI, Start: pos, End: pos}
	}
	res.Diagnostics = []diag.Diagnostic{
		diag.New(diag.SevError, diag.SemaDuplicateSymbol, at(4), "late"),
		diag.New(diag.SevWarning, diag.IncCycle, at(1), "early warning"),
		diag.New(diag.SevError, diag.IncNotFound, at(1), "early error"),
	}
	files := filesOf([]*inspect.Result{res}, true)
	var got []string
	for _, d := range files[0].Diagnostics {
		got = append(got, d.Message)
	}
	if len(got) != 4 || strings.Join(got[:3], "|") != "early error|early warning|late" {
		t.Fatalf("unexpected order %q", got)
	}
	if files[0].Diagnostics[3].Code != diag.ObsTimings {
		t.Fatalf("timings must stay last")
	}
	if res.Diagnostics[0].Message != "late" {
		t.Fatalf("cached result must keep emission order")
	}
}

func TestWatchRootsDefaultsToProjectRoot(t *testing.T) {
	dir, _ := testProject(t)
	t.Chdir(filepath.Join(dir, "src"))
	roots, err := watchRoots(nil)
	if err != nil {
		t.Fatalf("watchRoots: %v", err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(roots[0])
	if len(roots) != 1 || got != want {
		t.Fatalf("expected project root %s, got %v", dir, roots)
	}
	roots, _ = watchRoots([]string{"a", "b"})
	if strings.Join(roots, ",") != "a,b" {
		t.Fatalf("explicit roots must win, got %v", roots)
	}
}
