// Package config provides a simple, structured way to manage application
// configuration.
//
// It builds upon the Viper library and adds validation, default value
// registration from struct tags, environment and flag integration, and
// file watching.
//
// All configuration structs must implement the Config interface:
//
//	type Config interface {
//	    Validate() error
//	}
//
// A package registers its configuration struct once, typically in an init
// function, and reads it back through Get:
//
//	cfg := hwid.DefaultConfig()
//	if err := config.Register("hwident", &cfg); err != nil {
//	    return err
//	}
//	if err := config.Read(); err != nil {
//	    return err
//	}
package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stoewer/go-strcase"
	"github.com/valentin-kaiser/hwident/apperror"
	"github.com/valentin-kaiser/hwident/flag"
	"github.com/valentin-kaiser/hwident/logging"
	"gopkg.in/yaml.v2"
)

var (
	logger     = logging.GetPackageLogger("config")
	mutex      = &sync.RWMutex{}
	config     Config
	configname string
	onChange   []func(o Config, n Config) error
	lastChange atomic.Int64
	vp         *viper.Viper
)

// Config is the interface that all configuration structs must implement
// It should contain a Validate method that checks the configuration for errors
type Config interface {
	Validate() error
}

// Register registers a configuration struct and derives defaults, environment
// bindings and flag bindings from its fields
// The name is used as the name of the configuration file and the prefix for
// the environment variables
func Register(name string, c Config) error {
	if c == nil {
		return apperror.NewError("the configuration provided is nil")
	}

	if reflect.TypeOf(c).Kind() != reflect.Ptr || reflect.TypeOf(c).Elem().Kind() != reflect.Struct {
		return apperror.NewErrorf("the configuration provided is not a pointer to a struct, got %T", c)
	}

	configname = name

	vp = viper.New()
	vp.SetConfigName(name)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(flag.Path)
	vp.SetEnvPrefix(strcase.UpperSnakeCase(name))
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	err := registerFields(reflect.ValueOf(c).Elem(), "")
	if err != nil {
		return apperror.Wrap(err)
	}

	set(c)
	return nil
}

// OnChange registers a function that is called when the configuration changes
func OnChange(f func(o Config, n Config) error) {
	onChange = append(onChange, f)
}

// Get returns the current configuration
func Get() Config {
	mutex.RLock()
	defer mutex.RUnlock()
	return config
}

// Read reads the configuration from the file, validates it and applies it
// If the file does not exist, it creates a new one with the default values
func Read() error {
	if vp == nil {
		return apperror.NewError("no configuration registered")
	}

	err := vp.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return apperror.NewError("reading configuration file failed").AddError(err)
		}

		err = os.MkdirAll(flag.Path, 0750)
		if err != nil {
			return apperror.NewError("creating configuration directory failed").AddError(err)
		}

		err = save()
		if err != nil {
			return apperror.NewError("writing default configuration file failed").AddError(err)
		}

		// Retry reading the config file after creating it
		err = vp.ReadInConfig()
		if err != nil {
			return apperror.NewError("reading configuration file after creation failed").AddError(err)
		}
	}

	change, ok := reflect.New(reflect.TypeOf(config).Elem()).Interface().(Config)
	if !ok {
		return apperror.NewErrorf("creating new instance of %T failed", config)
	}

	err = unmarshal(change)
	if err != nil {
		return apperror.NewErrorf("unmarshalling configuration data in %T failed", config).AddError(err)
	}

	err = change.Validate()
	if err != nil {
		return apperror.Wrap(err)
	}

	o := Get()
	set(change)
	for _, f := range onChange {
		err = f(o, change)
		if err != nil {
			return apperror.Wrap(err)
		}
	}

	return nil
}

// Write writes the configuration to the file, validates it and applies it
func Write(change Config) error {
	if change == nil {
		return apperror.NewError("the configuration provided is nil")
	}

	err := change.Validate()
	if err != nil {
		return apperror.Wrap(err)
	}

	o := Get()
	set(change)
	err = save()
	if err != nil {
		return apperror.Wrap(err)
	}

	for _, f := range onChange {
		err = f(o, change)
		if err != nil {
			return apperror.Wrap(err)
		}
	}

	return nil
}

// Watch watches the configuration file for changes and reloads it
// It ignores changes that happen within 1 second of each other
// This is to prevent multiple calls when the file is saved
func Watch() {
	if vp == nil {
		logger.Error().Msg("cannot watch configuration, none registered")
		return
	}

	vp.OnConfigChange(func(_ fsnotify.Event) {
		if time.Now().UnixMilli()-lastChange.Load() < 1000 {
			return
		}
		lastChange.Store(time.Now().UnixMilli())
		err := Read()
		if err != nil {
			logger.Error().Err(err).Msg("failed to read configuration")
			return
		}
	})
	vp.WatchConfig()
}

// Reset clears the global state of the config package
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	config = nil
	configname = ""
	onChange = nil
	lastChange.Store(0)
	vp = nil
}

// Changed checks if two configuration values are different by comparing their
// reflection values. It returns true if the configurations differ, false if
// they are the same.
func Changed(o, n any) bool {
	if o == nil && n == nil {
		return false
	}

	if o == nil || n == nil {
		return true
	}

	ov := reflect.ValueOf(o)
	nv := reflect.ValueOf(n)

	if ov.Kind() == reflect.Ptr && !ov.IsNil() {
		ov = ov.Elem()
	}
	if nv.Kind() == reflect.Ptr && !nv.IsNil() {
		nv = nv.Elem()
	}

	if ov.Kind() != nv.Kind() {
		return true
	}

	return !reflect.DeepEqual(ov.Interface(), nv.Interface())
}

// set applies the configuration to the global variable
func set(appConfig Config) {
	mutex.Lock()
	defer mutex.Unlock()
	config = appConfig
}

// registerFields walks the struct fields, registers their current values as
// defaults and binds each key to its environment variable and, when one with
// a matching name exists, to a command line flag
func registerFields(v reflect.Value, prefix string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key := fieldKey(field)
		if prefix != "" {
			key = prefix + "." + key
		}

		value := v.Field(i)
		if value.Kind() == reflect.Struct && value.Type() != reflect.TypeOf(time.Time{}) {
			err := registerFields(value, key)
			if err != nil {
				return err
			}
			continue
		}

		vp.SetDefault(key, value.Interface())

		err := vp.BindEnv(key)
		if err != nil {
			return apperror.Wrap(err)
		}

		if f := flag.Lookup(flagName(key)); f != nil {
			err = vp.BindPFlag(key, f)
			if err != nil {
				return apperror.Wrap(err)
			}
		}
	}
	return nil
}

// flagName derives the flag name a configuration key binds to, both the
// key separator and underscores map to dashes so that snake case keys
// like query_timeout_ms match their query-timeout-ms flag
func flagName(key string) string {
	return strings.NewReplacer(".", "-", "_", "-").Replace(key)
}

// fieldKey derives the configuration key of a struct field from its yaml tag,
// falling back to the snake case form of the field name
func fieldKey(field reflect.StructField) string {
	tag := field.Tag.Get("yaml")
	if tag != "" {
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
	}
	if tag == "" || tag == "-" {
		return strcase.SnakeCase(field.Name)
	}
	return tag
}

// unmarshal decodes the merged settings into the target through yaml so that
// the same yaml tags drive file parsing and struct mapping
func unmarshal(target Config) error {
	data, err := yaml.Marshal(vp.AllSettings())
	if err != nil {
		return apperror.Wrap(err)
	}
	return apperror.Wrap(yaml.Unmarshal(data, target))
}

// save writes the current configuration to the configuration file
func save() error {
	mutex.RLock()
	defer mutex.RUnlock()

	data, err := yaml.Marshal(config)
	if err != nil {
		return apperror.Wrap(err)
	}

	file := filepath.Join(flag.Path, configname+".yaml")
	return apperror.Wrap(os.WriteFile(file, data, 0600))
}
