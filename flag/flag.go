// Package flag bundles the process-wide command line flags shared by the
// other packages of this module. The config package binds registered flags
// to configuration keys so that flag values override file and environment
// values.
package flag

import (
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/valentin-kaiser/hwident/apperror"
)

var (
	// Path is the directory used for configuration and log files
	Path = "./data"
	// Debug enables debug logging
	Debug bool
	// Help requests usage output
	Help bool
	// Version requests version output
	Version bool

	flags = pflag.NewFlagSet("hwident", pflag.ContinueOnError)
)

func init() {
	flags.StringVar(&Path, "path", Path, "Directory for configuration and log files")
	flags.BoolVar(&Debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&Help, "help", false, "Print usage information")
	flags.BoolVar(&Version, "version", false, "Print version information")
}

// Register adds a typed flag to the shared flag set. The value must be a
// pointer to one of the supported types.
func Register(name string, value interface{}, usage string) {
	if flags.Lookup(name) != nil {
		return
	}

	switch v := value.(type) {
	case *string:
		flags.StringVar(v, name, *v, usage)
	case *bool:
		flags.BoolVar(v, name, *v, usage)
	case *int:
		flags.IntVar(v, name, *v, usage)
	case *int64:
		flags.Int64Var(v, name, *v, usage)
	case *uint:
		flags.UintVar(v, name, *v, usage)
	case *float64:
		flags.Float64Var(v, name, *v, usage)
	case *time.Duration:
		flags.DurationVar(v, name, *v, usage)
	}
}

// Lookup returns the flag with the given name or nil
func Lookup(name string) *pflag.Flag {
	return flags.Lookup(name)
}

// FlagSet returns the shared flag set, for integration with CLI frameworks
func FlagSet() *pflag.FlagSet {
	return flags
}

// Parse parses the process arguments into the shared flag set
func Parse() error {
	err := flags.Parse(os.Args[1:])
	if err != nil {
		return apperror.Wrap(err)
	}
	return nil
}
