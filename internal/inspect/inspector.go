// Package inspect drives the per-file analysis pipeline: tokenize,
// preprocess, parse, resolve includes, analyze. Results are cached per file
// and include targets are inspected recursively through the same cache.
package inspect

import (
	"sync"

	"github.com/tliron/commonlog"

	"nvgtls/internal/diag"
	"nvgtls/internal/lexer"
	"nvgtls/internal/observ"
	"nvgtls/internal/sema"
	"nvgtls/internal/settings"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

var log = commonlog.GetLogger("nvgtls.inspect")

type Options struct {
	// PredefinedURI is the pinned file whose scope every other file sees first.
	// Empty disables the predefined scope.
	PredefinedURI source.FileID
	// StdlibRoot is the directory URI (with a trailing slash) searched when an
	// include is not found next to the including file.
	StdlibRoot source.FileID
	Reader     source.Reader

	Preprocess Preprocessor
	Parse      Parser
	Analyze    Analyzer
	TokenCache TokenCache

	// DiagnoseCycles reports a warning when an include re-enters a file whose
	// pipeline is still running.
	DiagnoseCycles bool
	// MaxDiagnostics limits diagnostics per file (0 = unlimited).
	MaxDiagnostics int
}

// Inspector owns the result cache and the diagnostic session stack.
// All methods are safe for concurrent use; calls are serialized.
type Inspector struct {
	mu       sync.Mutex
	opts     Options
	cache    *Cache
	sessions *diag.Sessions
}

func New(opts Options) *Inspector {
	if opts.Reader == nil {
		opts.Reader = source.ReadOS
	}
	if opts.Preprocess == nil {
		opts.Preprocess = defaultPreprocess
	}
	if opts.Parse == nil {
		opts.Parse = defaultParse
	}
	if opts.Analyze == nil {
		opts.Analyze = defaultAnalyze
	}
	if opts.StdlibRoot == "" {
		opts.StdlibRoot = settings.Default().StdlibURI()
	}
	return &Inspector{
		opts:     opts,
		cache:    NewCache(opts.PredefinedURI),
		sessions: diag.NewSessions(opts.MaxDiagnostics),
	}
}

// Inspect runs the pipeline on content as the file uri and stores the
// result, replacing any previous one. It never fails: problems end up in
// the result's diagnostics. Only include targets get an in-progress
// placeholder: an include chain leading back to uri reads it again and
// analyzes it as a nested file.
func (in *Inspector) Inspect(content string, uri source.FileID) *Result {
	in.mu.Lock()
	defer in.mu.Unlock()

	predefined := in.ensurePredefined()
	res := in.run(content, uri, predefined)
	in.cache.Put(uri, res)
	return res
}

// Result returns the cached result for uri or an empty one.
func (in *Inspector) Result(uri source.FileID) *Result {
	in.mu.Lock()
	defer in.mu.Unlock()
	if res, ok := in.cache.Get(uri); ok {
		return res
	}
	return EmptyResult(uri)
}

// Results returns every cached result ordered by URI.
func (in *Inspector) Results() []*Result {
	in.mu.Lock()
	defer in.mu.Unlock()
	uris := in.cache.URIs()
	out := make([]*Result, 0, len(uris))
	for _, uri := range uris {
		res, _ := in.cache.Get(uri)
		out = append(out, res)
	}
	return out
}

// ClearCache forgets every result except the predefined file's.
func (in *Inspector) ClearCache() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.cache.Clear()
	log.Debugf("cache cleared, %d entries kept", in.cache.Len())
}

// ApplySettings takes the settings-derived options into account for the
// following inspections. Cached results are left as they are.
func (in *Inspector) ApplySettings(s settings.Settings) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.opts.StdlibRoot = s.StdlibURI()
	in.opts.DiagnoseCycles = s.Diagnostics.IncludeCycles
	in.opts.MaxDiagnostics = s.Diagnostics.MaxDiagnostics
	in.sessions = diag.NewSessions(s.Diagnostics.MaxDiagnostics)
	log.Infof("settings applied: stdlib %q", in.opts.StdlibRoot)
}

// ensurePredefined loads the predefined file on first use. It returns the
// predefined URI when its result is available.
func (in *Inspector) ensurePredefined() source.FileID {
	uri := in.opts.PredefinedURI
	if uri == "" {
		return ""
	}
	if _, ok := in.cache.Get(uri); ok {
		return uri
	}
	content, ok := in.opts.Reader(uri)
	if !ok {
		log.Warningf("predefined file %q is not readable", uri)
		return ""
	}
	in.cache.begin(uri)
	in.cache.Put(uri, in.run(content, uri, ""))
	return uri
}

// run is one pipeline pass inside its own diagnostic session.
func (in *Inspector) run(content string, uri, predefined source.FileID) *Result {
	log.Infof("Inspect %q", uri)
	in.sessions.Launch()
	timer := observ.NewTimer("Inspector")

	tokens := in.tokenize(content, uri)
	timer.Stamp("Tokenizer")

	pre := in.opts.Preprocess(tokens, in.sessions)
	timer.Stamp("Preprocess")

	script := in.opts.Parse(pre.ParsingTokens, uri, in.sessions)
	timer.Stamp("Parser")

	includes, targets := in.resolveIncludes(uri, predefined, pre.IncludeFiles)
	timer.Stamp("Includes")

	scope := in.opts.Analyze(AnalyzeRequest{
		Script:     script,
		File:       uri,
		Includes:   includes,
		Predefined: uri == in.opts.PredefinedURI,
		Reporter:   in.sessions,
	})
	sema.Highlight(tokens, script, scope)
	timer.Stamp("Analyzer")

	log.Debugf("%s: %s", uri, timer.Summary())
	return &Result{
		URI:         uri,
		Content:     content,
		Diagnostics: in.sessions.Complete(),
		Tokens:      tokens,
		AST:         script,
		Scope:       scope,
		Includes:    targets,
		Timings:     timer.Report(),
	}
}

func (in *Inspector) tokenize(content string, uri source.FileID) []token.Token {
	tc := in.opts.TokenCache
	if tc != nil {
		if tokens, lexical, ok := tc.Load(uri, content); ok {
			in.replay(lexical)
			return tokens
		}
	}
	bag := diag.NewBag(0)
	tokens := lexer.Tokenize(content, uri, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	in.replay(bag.Items())
	if tc != nil {
		tc.Store(uri, content, tokens, bag.Items())
	}
	return tokens
}

func (in *Inspector) replay(ds []diag.Diagnostic) {
	for _, d := range ds {
		in.sessions.Report(d.Code, d.Severity, d.Location, d.Message)
	}
}
