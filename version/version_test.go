package version_test

import (
	"testing"

	"github.com/valentin-kaiser/hwident/version"
)

func TestGet(t *testing.T) {
	v := version.Get()
	if v == nil {
		t.Error("Get() returned nil")
		return
	}

	if v.GitTag == "" {
		t.Error("GitTag should not be empty")
	}

	if v.GitCommit == "" {
		t.Error("GitCommit should not be empty")
	}

	if v.GitShort == "" {
		t.Error("GitShort should not be empty")
	}

	if v.BuildDate == "" {
		t.Error("BuildDate should not be empty")
	}

	if v.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}

	if v.Platform == "" {
		t.Error("Platform should not be empty")
	}

	if v.Modules == nil {
		t.Error("Modules should not be nil")
	}
}

func TestMajor(t *testing.T) {
	originalTag := version.GitTag
	defer func() { version.GitTag = originalTag }()

	version.GitTag = "v1.2.3"
	if version.Major() != 1 {
		t.Errorf("Expected major version 1, got %d", version.Major())
	}

	version.GitTag = "invalid"
	if version.Major() != 0 {
		t.Errorf("Expected major version 0 for invalid tag, got %d", version.Major())
	}
}

func TestMinorPatch(t *testing.T) {
	originalTag := version.GitTag
	defer func() { version.GitTag = originalTag }()

	version.GitTag = "v2.4.6"
	if version.Minor() != 4 {
		t.Errorf("Expected minor version 4, got %d", version.Minor())
	}
	if version.Patch() != 6 {
		t.Errorf("Expected patch version 6, got %d", version.Patch())
	}

	version.GitTag = "v2"
	if version.Minor() != 0 {
		t.Errorf("Expected minor version 0 for short tag, got %d", version.Minor())
	}
}
