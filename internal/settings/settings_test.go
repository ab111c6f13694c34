package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nvgtls/internal/settings"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nvgtls.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	s := settings.Default()
	if s.Formatter.MaxBlankLines != 1 || s.Formatter.IndentSpaces != 4 || s.Formatter.UseTabIndent {
		t.Fatalf("unexpected formatter defaults %+v", s.Formatter)
	}
	if s.Trace.Server != "off" || s.Verbosity() != 0 {
		t.Fatalf("unexpected trace defaults %+v", s.Trace)
	}
	if s.Diagnostics.IncludeCycles {
		t.Fatalf("cycle diagnostics must be off by default")
	}
	if !strings.HasSuffix(s.StandardLibrary.Path, string(filepath.Separator)) {
		t.Fatalf("stdlib root must end with a separator: %q", s.StandardLibrary.Path)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(settings.EnvStdlib, "")
	lib := t.TempDir()
	path := writeConfig(t, `
[standardLibrary]
path = "`+filepath.ToSlash(lib)+`"

[formatter]
indentSpaces = 2

[trace]
server = "verbose"

[diagnostics]
includeCycles = true
maxDiagnostics = 50
`)
	s, err := settings.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.StandardLibrary.Path != filepath.Clean(lib)+string(filepath.Separator) {
		t.Fatalf("unexpected stdlib path %q", s.StandardLibrary.Path)
	}
	if s.Formatter.IndentSpaces != 2 || s.Formatter.MaxBlankLines != 1 {
		t.Fatalf("unset keys must keep defaults: %+v", s.Formatter)
	}
	if s.Verbosity() != 2 || !s.Diagnostics.IncludeCycles || s.Diagnostics.MaxDiagnostics != 50 {
		t.Fatalf("unexpected settings %+v", s)
	}
	if !strings.HasSuffix(string(s.StdlibURI()), "/") {
		t.Fatalf("stdlib URI must end with a slash: %q", s.StdlibURI())
	}
}

func TestMissingStdlibFallsBackToRoot(t *testing.T) {
	t.Setenv(settings.EnvStdlib, "")
	path := writeConfig(t, "[standardLibrary]\npath = \"/definitely/not/here\"\n")
	s, err := settings.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.StandardLibrary.Path != settings.Default().StandardLibrary.Path {
		t.Fatalf("expected filesystem root, got %q", s.StandardLibrary.Path)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	lib := t.TempDir()
	t.Setenv(settings.EnvStdlib, lib)
	s := settings.Default()
	if err := s.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if s.StandardLibrary.Path != filepath.Clean(lib)+string(filepath.Separator) {
		t.Fatalf("environment override ignored: %q", s.StandardLibrary.Path)
	}
}

func TestInvalidTrace(t *testing.T) {
	path := writeConfig(t, "[trace]\nserver = \"loud\"\n")
	if _, err := settings.Load(path); !errors.Is(err, settings.ErrInvalidTrace) {
		t.Fatalf("expected ErrInvalidTrace, got %v", err)
	}
}

func TestBrokenTOML(t *testing.T) {
	path := writeConfig(t, "[trace\n")
	if _, err := settings.Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestLoadYAML(t *testing.T) {
	t.Setenv(settings.EnvStdlib, "")
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "include"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "nvgtls.yaml")
	content := "standardLibrary:\n  path: include\ntrace:\n  server: messages\ndiagnostics:\n  includeCycles: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := settings.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := filepath.Join(dir, "include") + string(filepath.Separator)
	if s.StandardLibrary.Path != want {
		t.Fatalf("relative stdlib path must resolve next to the file: got %q, want %q", s.StandardLibrary.Path, want)
	}
	if s.Verbosity() != 1 || !s.Diagnostics.IncludeCycles || s.Formatter.IndentSpaces != 4 {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvgtls.yml")
	if err := os.WriteFile(path, []byte("trace: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := settings.Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}
