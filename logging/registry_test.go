package logging_test

import (
	"testing"

	"github.com/valentin-kaiser/hwident/logging"
)

func TestPackageLoggerUsesGlobalAdapter(t *testing.T) {
	capture := logging.NewCaptureAdapter()
	logging.SetGlobalAdapter(capture)
	defer logging.SetGlobalAdapter(logging.NewNoOpAdapter())

	logger := logging.GetPackageLogger("collector")
	logger.Info().Field("category", "CPU").Msg("collecting")

	entries := capture.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	var foundPackage bool
	for _, field := range entries[0].Fields {
		if field.Key == "package" && field.Value == "collector" {
			foundPackage = true
		}
	}
	if !foundPackage {
		t.Error("entry should carry the package field from the registry")
	}
}

func TestPackageAdapterOverridesGlobal(t *testing.T) {
	global := logging.NewCaptureAdapter()
	override := logging.NewCaptureAdapter()
	logging.SetGlobalAdapter(global)
	defer logging.SetGlobalAdapter(logging.NewNoOpAdapter())

	logging.SetPackageAdapter("wmi", override)
	defer logging.EnablePackage("wmi")

	logging.GetPackageLogger("wmi").Warn().Msg("query failed")

	if len(global.Entries()) != 0 {
		t.Error("global adapter should not receive entries for an overridden package")
	}
	if len(override.Entries()) != 1 {
		t.Errorf("override adapter should have 1 entry, got %d", len(override.Entries()))
	}
}

func TestDisablePackage(t *testing.T) {
	capture := logging.NewCaptureAdapter()
	logging.SetGlobalAdapter(capture)
	defer logging.SetGlobalAdapter(logging.NewNoOpAdapter())

	logging.DisablePackage("noisy")
	defer logging.EnablePackage("noisy")

	logging.GetPackageLogger("noisy").Error().Msg("dropped")

	if len(capture.Entries()) != 0 {
		t.Error("disabled package should not log anywhere")
	}
}
