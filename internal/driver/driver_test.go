package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nvgtls/internal/diag"
	"nvgtls/internal/driver"
	"nvgtls/internal/lexer"
	"nvgtls/internal/project"
	"nvgtls/internal/settings"
	"nvgtls/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	const uri source.FileID = "file:///proj/main.nvgt"
	content := "int x = 3.14f; ` // tail"
	bag := diag.NewBag(0)
	tokens := lexer.Tokenize(content, uri, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	if _, _, ok := cache.Load(uri, content); ok {
		t.Fatalf("unexpected hit on an empty cache")
	}
	cache.Store(uri, content, tokens, bag.Items())

	got, lexical, ok := cache.Load(uri, content)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if len(got) != len(tokens) {
		t.Fatalf("token count %d, want %d", len(got), len(tokens))
	}
	for i := range tokens {
		if got[i] != tokens[i] {
			t.Fatalf("token %d differs: %+v vs %+v", i, got[i], tokens[i])
		}
	}
	if len(lexical) != 1 || lexical[0].Message != bag.Items()[0].Message || lexical[0].Location != bag.Items()[0].Location {
		t.Fatalf("lexical diagnostics not preserved: %v", lexical)
	}
	if _, _, ok := cache.Load(uri, content+" "); ok {
		t.Fatalf("changed content must miss")
	}
	if _, _, ok := cache.Load("file:///other.nvgt", content); ok {
		t.Fatalf("other uri must miss")
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, _, ok := cache.Load(uri, content); ok {
		t.Fatalf("dropped cache must miss")
	}
}

func TestTokenCacheKeyIsSchemaSalted(t *testing.T) {
	cache, err := driver.NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	const uri source.FileID = "file:///proj/main.nvgt"
	content := "int x;"
	key := driver.TokenCacheKey(uri, content)
	if key == project.HashContent(string(uri), content) || key != driver.TokenCacheKey(uri, content) {
		t.Fatalf("key must be stable and differ from the bare content hash")
	}
	tokens := lexer.Tokenize(content, uri, lexer.Options{})
	payload := &driver.TokenPayload{Schema: 2, URI: uri, Tokens: tokens}
	if err := cache.Put(project.HashContent(string(uri), content), payload); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, _, ok := cache.Load(uri, content); ok {
		t.Fatalf("entry under an unsalted key must miss")
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("put: %v", err)
	}
	if got, _, ok := cache.Load(uri, content); !ok || len(got) != len(tokens) {
		t.Fatalf("entry under the salted key must hit")
	}
}

func TestInspectFilesSkipsUnreadablePaths(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "a.nvgt")
	last := filepath.Join(root, "c.nvgt")
	writeFile(t, first, "int a;\n")
	writeFile(t, last, "int c;\n")
	in := driver.NewInspector(settings.Default(), "", nil, nil)
	results, err := driver.InspectFiles(context.Background(), in,
		[]string{first, filepath.Join(root, "missing.nvgt"), last})
	if err != nil {
		t.Fatalf("unreadable path must not fail the run: %v", err)
	}
	if len(results) != 2 || len(results[1].Scope.Lookup("c")) != 1 {
		t.Fatalf("files after the unreadable one must still be inspected, got %d results", len(results))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.InspectFiles(ctx, in, []string{first}); err == nil {
		t.Fatalf("cancellation must still fail the run")
	}
}

func TestListScripts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.nvgt"), "")
	writeFile(t, filepath.Join(root, "sub", "a.as"), "")
	writeFile(t, filepath.Join(root, "notes.txt"), "")
	writeFile(t, filepath.Join(root, ".git", "x.nvgt"), "")
	explicit := filepath.Join(root, "notes.txt")

	files, err := driver.ListScripts([]string{root, explicit, filepath.Join(root, "b.nvgt")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{filepath.Join(root, "b.nvgt"), explicit, filepath.Join(root, "sub", "a.as")}
	if len(files) != len(want) {
		t.Fatalf("got %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("got %v, want %v", files, want)
		}
	}
	if _, err := driver.ListScripts([]string{filepath.Join(root, "missing")}); err == nil {
		t.Fatalf("missing path must fail")
	}
}

func TestTokenizeFiles(t *testing.T) {
	root := t.TempDir()
	var paths []string
	for i, src := range []string{"int a;", "float b = 1.5f;", "x $ y"} {
		p := filepath.Join(root, string(rune('a'+i))+".nvgt")
		writeFile(t, p, src)
		paths = append(paths, p)
	}
	results, err := driver.TokenizeFiles(context.Background(), paths, 0, 2)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	counts := []int{3, 5, 2}
	for i, res := range results {
		if res.Path != paths[i] || len(res.Tokens) != counts[i] {
			t.Fatalf("result %d: path %s, %d tokens", i, res.Path, len(res.Tokens))
		}
	}
	if results[2].Bag.Len() != 1 || results[0].Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics")
	}
	if _, err := driver.TokenizeFiles(context.Background(), append(paths, filepath.Join(root, "nope.nvgt")), 0, 2); err == nil {
		t.Fatalf("unreadable file must fail")
	}
}

func TestInspectFilesAndIncludeGraph(t *testing.T) {
	root := t.TempDir()
	main := filepath.Join(root, "main.nvgt")
	writeFile(t, main, "#include \"ui.nvgt\"\n#include \"util.nvgt\"\nvoid main() {}\n")
	writeFile(t, filepath.Join(root, "ui.nvgt"), "#include \"util.nvgt\"\nvoid show() {}\n")
	writeFile(t, filepath.Join(root, "util.nvgt"), "void helper() {}\n")
	predefined := filepath.Join(root, "as.predefined")
	writeFile(t, predefined, "void alert(string s) {}\n")

	cache, err := driver.NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	in := driver.NewInspector(settings.Default(), predefined, cache, nil)
	results, err := driver.InspectFiles(context.Background(), in, []string{main})
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if len(results) != 1 || len(results[0].Diagnostics) != 0 {
		t.Fatalf("unexpected results %v", results)
	}
	for _, name := range []string{"alert", "show", "helper"} {
		if len(results[0].Scope.Lookup(name)) != 1 {
			t.Fatalf("%s not visible from main", name)
		}
	}

	graph := driver.BuildIncludeGraph(in)
	if graph.Cycles != nil && len(graph.Cycles) != 0 {
		t.Fatalf("unexpected cycles %v", graph.Cycles)
	}
	var order []string
	for _, uri := range graph.Order {
		order = append(order, filepath.Base(source.DisplayPath(uri)))
	}
	got := strings.Join(order, ",")
	if got != "as.predefined,main.nvgt,ui.nvgt,util.nvgt" {
		t.Fatalf("unexpected include order %s", got)
	}

	timing := driver.TimingDiagnostic(results[0])
	if timing.Code != diag.ObsTimings || !strings.Contains(timing.Message, "\"Tokenizer\"") {
		t.Fatalf("unexpected timing diagnostic %+v", timing)
	}
}

func TestWatcherReinspectsOnChange(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.nvgt")
	writeFile(t, path, "int before;\n")

	in := driver.NewInspector(settings.Default(), "", nil, nil)
	rounds := make(chan driver.WatchEvent, 8)
	w, err := driver.NewWatcher(in, driver.WatchOptions{
		Roots:    []string{root},
		Debounce: 20 * time.Millisecond,
		OnRound:  func(ev driver.WatchEvent) { rounds <- ev },
	})
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	next := func() driver.WatchEvent {
		t.Helper()
		select {
		case ev := <-rounds:
			return ev
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for an inspection round")
		}
		return driver.WatchEvent{}
	}

	first := next()
	if len(first.Changed) != 0 || len(first.Results) != 1 || len(first.Results[0].Scope.Lookup("before")) != 1 {
		t.Fatalf("unexpected initial round %+v", first)
	}

	writeFile(t, path, "int after;\n")
	for {
		ev := next()
		if ev.Err != nil {
			t.Fatalf("round failed: %v", ev.Err)
		}
		if len(ev.Results) == 1 && len(ev.Results[0].Scope.Lookup("after")) == 1 {
			break
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not stop")
	}
}
