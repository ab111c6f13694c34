package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10
	maxFuzzInput = 1 << 16
)

var scriptSeeds = []string{
	"",
	"void main() {}\n",
	"#include \"a.nvgt\"\n#include \"b.nvgt\"\nint x = 1;\n",
	"namespace a::b { class c : d, e { int f() const { return 0; } } }\n",
	"enum color { red, green = 2, blue }\nfuncdef void cb(int);\ntypedef float real;\n",
	"import void f() from \"mod\";\nshared abstract class base {}\n",
	"string s = \"\"\"multi\nline\"\"\";\n/* block\ncomment */ // tail\n",
	"x >>>= 1; a !is null; b <<= 2; c **= 3;\n",
	"int y = 0x1F + 1.5e3f + .5;\r\nint z = 'c';\rint w;\n",
	"class { } } ( [ { \"unterminated\n$$ @@ ` \\\n",
	"interface i { void m(); int p { get; set; } }\n",
	"#if X\n#pragma once\n#endif\n#include\n#include 42\n",
	"日本語 = \"строка\";\n\tint\tx;\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range scriptSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every script found under testdata/ next to the harness.
func addTestdataSeeds(f *testing.F) {
	root := "testdata"
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".nvgt", ".as":
		default:
			return nil
		}
		// #nosec G304 -- path comes from the testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
