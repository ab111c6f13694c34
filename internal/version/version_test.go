package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestBannerPlain(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	GitCommit = "abc123"
	BuildDate = "2024-01-15"
	if got := Banner(false); got != "nvgtls 1.2.3 (abc123) built 2024-01-15" {
		t.Fatalf("Banner = %q", got)
	}
	GitCommit, BuildDate = "", ""
	if got := Banner(false); got != "nvgtls 1.2.3" {
		t.Fatalf("Banner = %q", got)
	}
}

func TestColoredKeepsSuffix(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = orig, origNoColor }()

	color.NoColor = true
	Version = "0.4.1-rc1"
	if got := Colored(); got != "0.4.1-rc1" {
		t.Fatalf("Colored = %q", got)
	}
	Version = "weird"
	if got := Colored(); got != "weird" {
		t.Fatalf("malformed version must pass through, got %q", got)
	}
	color.NoColor = false
	Version = "1.0.0"
	if got := Colored(); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escape codes in %q", got)
	}
}
