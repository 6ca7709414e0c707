package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origCommit, origDate := Commit, Date
	defer func() { Commit, Date = origCommit, origDate }()

	Commit, Date = "unknown", "unknown"
	if got := String(); !strings.HasPrefix(got, "swatch version dev (") {
		t.Errorf("String() = %q, want prefix %q", got, "swatch version dev (")
	}

	Commit, Date = "0123456789abcdef", "2025-01-01T00:00:00Z"
	if got := String(); !strings.Contains(got, "commit: 01234567,") {
		t.Errorf("String() = %q, want short commit", got)
	}

	Commit = "abc"
	if got := String(); !strings.Contains(got, "commit: abc,") {
		t.Errorf("String() = %q, want untruncated short commit", got)
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version {
		t.Errorf("GetInfo().Version = %q, want %q", info.Version, Version)
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo().Platform = %q, want os/arch", info.Platform)
	}
}

func TestStringNeedsCommitAndDate(t *testing.T) {
	origCommit, origDate := Commit, Date
	defer func() { Commit, Date = origCommit, origDate }()

	Commit, Date = "0123456789abcdef", "unknown"
	if got := String(); strings.Contains(got, "commit:") {
		t.Errorf("String() = %q, want no commit without a build date", got)
	}
	if got := Short(); got != Version {
		t.Errorf("Short() = %q, want %q", got, Version)
	}
}
