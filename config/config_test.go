package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/valentin-kaiser/hwident/apperror"
	"github.com/valentin-kaiser/hwident/config"
	"github.com/valentin-kaiser/hwident/flag"
)

type testConfig struct {
	Name       string `yaml:"name"`
	Retries    int    `yaml:"retries"`
	Verbose    bool   `yaml:"verbose"`
	TimeoutMS  int    `yaml:"timeout_ms"`
	unexported string
}

func (c *testConfig) Validate() error {
	if c.Retries < 0 {
		return apperror.NewError("retries must not be negative")
	}
	if c.TimeoutMS <= 0 {
		return apperror.NewError("timeout_ms must be positive")
	}
	return nil
}

func setup(t *testing.T) {
	t.Helper()
	original := flag.Path
	flag.Path = t.TempDir()
	t.Cleanup(func() {
		flag.Path = original
		config.Reset()
	})
}

func TestRegisterRejectsInvalidConfigs(t *testing.T) {
	setup(t)

	if err := config.Register("invalid", nil); err == nil {
		t.Error("Register(nil) should fail")
	}
}

func TestReadCreatesDefaultFile(t *testing.T) {
	setup(t)

	cfg := &testConfig{Name: "default", Retries: 3, TimeoutMS: 3000}
	if err := config.Register("testapp", cfg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := config.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(flag.Path, "testapp.yaml")); err != nil {
		t.Errorf("Read() should have created the default configuration file: %v", err)
	}

	applied, ok := config.Get().(*testConfig)
	if !ok {
		t.Fatalf("Get() returned %T", config.Get())
	}
	if applied.Name != "default" || applied.Retries != 3 {
		t.Errorf("defaults were not applied: %+v", applied)
	}
}

func TestReadAppliesFileValues(t *testing.T) {
	setup(t)

	file := filepath.Join(flag.Path, "testapp.yaml")
	content := "name: from-file\nretries: 7\nverbose: true\ntimeout_ms: 1500\n"
	if err := os.WriteFile(file, []byte(content), 0600); err != nil {
		t.Fatalf("writing config file failed: %v", err)
	}

	cfg := &testConfig{Name: "default", Retries: 3, TimeoutMS: 3000}
	if err := config.Register("testapp", cfg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := config.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	applied := config.Get().(*testConfig)
	if applied.Name != "from-file" || applied.Retries != 7 || !applied.Verbose || applied.TimeoutMS != 1500 {
		t.Errorf("file values were not applied: %+v", applied)
	}
}

func TestReadRejectsInvalidValues(t *testing.T) {
	setup(t)

	file := filepath.Join(flag.Path, "testapp.yaml")
	if err := os.WriteFile(file, []byte("retries: -1\ntimeout_ms: 1000\n"), 0600); err != nil {
		t.Fatalf("writing config file failed: %v", err)
	}

	cfg := &testConfig{Retries: 3, TimeoutMS: 3000}
	if err := config.Register("testapp", cfg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := config.Read(); err == nil {
		t.Error("Read() should fail validation for negative retries")
	}
}

func TestEnvironmentOverride(t *testing.T) {
	setup(t)

	t.Setenv("TESTAPP_RETRIES", "9")

	cfg := &testConfig{Name: "default", Retries: 3, TimeoutMS: 3000}
	if err := config.Register("testapp", cfg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := config.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	applied := config.Get().(*testConfig)
	if applied.Retries != 9 {
		t.Errorf("environment override was not applied, retries = %d", applied.Retries)
	}
}

func TestWriteAndOnChange(t *testing.T) {
	setup(t)

	cfg := &testConfig{Name: "default", Retries: 3, TimeoutMS: 3000}
	if err := config.Register("testapp", cfg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	changed := false
	config.OnChange(func(o, n config.Config) error {
		changed = true
		return nil
	})

	update := &testConfig{Name: "updated", Retries: 5, TimeoutMS: 2000}
	if err := config.Write(update); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !changed {
		t.Error("OnChange callback was not invoked")
	}

	if config.Get().(*testConfig).Name != "updated" {
		t.Error("Write() did not apply the new configuration")
	}
}

type windowConfig struct {
	QueryWindowMS int `yaml:"query_window_ms"`
}

func (c *windowConfig) Validate() error {
	if c.QueryWindowMS <= 0 {
		return apperror.NewError("query_window_ms must be positive")
	}
	return nil
}

func TestFlagOverridesUnderscoredKey(t *testing.T) {
	setup(t)

	window := 3000
	flag.Register("query-window-ms", &window, "Query window in milliseconds")
	if err := flag.FlagSet().Set("query-window-ms", "1234"); err != nil {
		t.Fatalf("setting flag failed: %v", err)
	}

	cfg := &windowConfig{QueryWindowMS: 3000}
	if err := config.Register("windowapp", cfg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := config.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	applied := config.Get().(*windowConfig)
	if applied.QueryWindowMS != 1234 {
		t.Errorf("flag override was not applied, query_window_ms = %d", applied.QueryWindowMS)
	}
}

func TestChanged(t *testing.T) {
	a := &testConfig{Name: "a"}
	b := &testConfig{Name: "b"}

	if config.Changed(a, a) {
		t.Error("Changed() should be false for identical configs")
	}
	if !config.Changed(a, b) {
		t.Error("Changed() should be true for different configs")
	}
	if config.Changed(nil, nil) {
		t.Error("Changed(nil, nil) should be false")
	}
	if !config.Changed(a, nil) {
		t.Error("Changed(a, nil) should be true")
	}
}
