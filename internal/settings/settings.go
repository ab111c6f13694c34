// Package settings holds the language server configuration: the standard
// library location, formatter preferences, trace level and diagnostic knobs.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"nvgtls/internal/source"
)

// EnvStdlib overrides standardLibrary.path when set.
const EnvStdlib = "NVGT_STDLIB"

var (
	ErrInvalidTrace = errors.New("invalid trace level")
	ErrInvalidValue = errors.New("invalid setting value")
)

var log = commonlog.GetLogger("nvgtls.settings")

type StandardLibrary struct {
	Path string `toml:"path" yaml:"path"`
}

type Formatter struct {
	MaxBlankLines int  `toml:"maxBlankLines" yaml:"maxBlankLines"`
	IndentSpaces  int  `toml:"indentSpaces" yaml:"indentSpaces"`
	UseTabIndent  bool `toml:"useTabIndent" yaml:"useTabIndent"`
}

type Trace struct {
	// Server is one of "off", "messages", "verbose".
	Server string `toml:"server" yaml:"server"`
}

type Diagnostics struct {
	// IncludeCycles reports an include that re-enters a file still being inspected.
	IncludeCycles bool `toml:"includeCycles" yaml:"includeCycles"`
	// MaxDiagnostics limits diagnostics per file; 0 means unlimited.
	MaxDiagnostics int `toml:"maxDiagnostics" yaml:"maxDiagnostics"`
}

type Settings struct {
	StandardLibrary StandardLibrary `toml:"standardLibrary" yaml:"standardLibrary"`
	Formatter       Formatter       `toml:"formatter" yaml:"formatter"`
	Trace           Trace           `toml:"trace" yaml:"trace"`
	Diagnostics     Diagnostics     `toml:"diagnostics" yaml:"diagnostics"`
}

// Default returns the built-in configuration, already normalized.
func Default() Settings {
	return Settings{
		StandardLibrary: StandardLibrary{Path: fsRoot()},
		Formatter: Formatter{
			MaxBlankLines: 1,
			IndentSpaces:  4,
			UseTabIndent:  false,
		},
		Trace: Trace{Server: "off"},
	}
}

// Load reads a settings file on top of the defaults, applies the environment
// override and normalizes the result. The format follows the extension:
// .yaml/.yml is YAML, anything else TOML. Unknown TOML keys are logged and
// ignored. A relative standard library path is taken relative to the file.
func Load(path string) (Settings, error) {
	s := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// #nosec G304 -- path is the user's settings file
		data, err := os.ReadFile(path)
		if err != nil {
			return Default(), fmt.Errorf("failed to read settings: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Default(), fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		meta, err := toml.DecodeFile(path, &s)
		if err != nil {
			return Default(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		for _, key := range meta.Undecoded() {
			log.Warningf("%s: unknown setting %q", path, key.String())
		}
	}
	if lib := s.StandardLibrary.Path; lib != "" && !filepath.IsAbs(lib) {
		if abs, err := filepath.Abs(path); err == nil {
			s.StandardLibrary.Path = filepath.Join(filepath.Dir(abs), lib)
		}
	}
	if err := s.Normalize(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Normalize validates the settings and resolves the standard library
// directory: absolute, terminated by a separator, falling back to the
// filesystem root when unset or missing. NVGT_STDLIB wins over the file.
func (s *Settings) Normalize() error {
	if env := strings.TrimSpace(os.Getenv(EnvStdlib)); env != "" {
		s.StandardLibrary.Path = env
	}
	s.StandardLibrary.Path = ensureIsDir(s.StandardLibrary.Path)

	switch s.Trace.Server {
	case "":
		s.Trace.Server = "off"
	case "off", "messages", "verbose":
	default:
		return fmt.Errorf("%w %q (want off, messages or verbose)", ErrInvalidTrace, s.Trace.Server)
	}
	if s.Formatter.MaxBlankLines < 0 || s.Formatter.IndentSpaces < 0 {
		return fmt.Errorf("%w: formatter values must not be negative", ErrInvalidValue)
	}
	if s.Diagnostics.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: diagnostics.maxDiagnostics must not be negative", ErrInvalidValue)
	}
	return nil
}

// StdlibURI returns the standard library directory as a file URI with a trailing slash.
func (s Settings) StdlibURI() source.FileID {
	return source.PathToURI(s.StandardLibrary.Path)
}

// Verbosity maps the trace level onto a commonlog verbosity.
func (s Settings) Verbosity() int {
	switch s.Trace.Server {
	case "messages":
		return 1
	case "verbose":
		return 2
	}
	return 0
}

func fsRoot() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

func ensureIsDir(dirpath string) string {
	if dirpath == "" {
		return fsRoot()
	}
	if _, err := os.Stat(dirpath); err != nil {
		return fsRoot()
	}
	if abs, err := filepath.Abs(dirpath); err == nil {
		dirpath = abs
	}
	if strings.HasSuffix(dirpath, string(filepath.Separator)) {
		return dirpath
	}
	return dirpath + string(filepath.Separator)
}
