package misc

import "testing"

func TestIdentity(t *testing.T) {
	if GetAppName() != "epubtoc" {
		t.Errorf("GetAppName() = %q", GetAppName())
	}
	if GetVersion() == "" {
		t.Error("GetVersion() is empty")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() is empty")
	}
}

func TestLinkerOverrides(t *testing.T) {
	defer func(v, h string) { version, gitHash = v, h }(version, gitHash)

	version, gitHash = "1.2.3", "abcdef"
	if got := GetVersion(); got != "1.2.3" {
		t.Errorf("GetVersion() = %q, want %q", got, "1.2.3")
	}
	if got := GetGitHash(); got != "abcdef" {
		t.Errorf("GetGitHash() = %q, want %q", got, "abcdef")
	}
}
