package pkg

import (
	"strings"
	"testing"
)

func TestVersionEmbedded(t *testing.T) {
	if strings.TrimSpace(Version) == "" {
		t.Fatal("Version must not be empty")
	}
}

func TestConfigDirContainsName(t *testing.T) {
	if !strings.Contains(ConfigDir(), Name) {
		t.Errorf("ConfigDir %q does not contain project name %q", ConfigDir(), Name)
	}
}

func TestCacheDirContainsName(t *testing.T) {
	if !strings.Contains(CacheDir(), Name) {
		t.Errorf("CacheDir %q does not contain project name %q", CacheDir(), Name)
	}
}
