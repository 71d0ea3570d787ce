// Package hwid derives a stable, privacy-conscious identifier for a
// Windows machine. It samples a small set of hardware and firmware
// attributes (CPU identifier, BIOS serial, baseboard serial, disk serial,
// TPM manufacturer data), joins them deterministically and hashes the
// result with a configurable algorithm.
//
// Attribute collection degrades gracefully: a source that fails, answers
// empty or times out resolves to an empty component instead of an error,
// and when no component at all could be read the identifier falls back to
// an unstable seed derived from the machine name. Callers that need a
// persistent identifier should treat such a degraded result accordingly.
//
// Example usage:
//
//	cfg := hwid.DefaultConfig()
//	result := hwid.New(cfg).Generate(context.Background())
//	if !result.Succeeded {
//	    log.Fatal(result.ErrorDetail)
//	}
//	fmt.Printf("Hardware ID: %s\n", result.Identifier)
//
//	// Check the shape of a previously stored identifier
//	if !hwid.Valid(stored, cfg) {
//	    fmt.Println("stored identifier is malformed")
//	}
package hwid

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"strings"
	"time"

	"github.com/valentin-kaiser/hwident/apperror"
)

// Algorithm selects the digest computed over the joined components
type Algorithm string

const (
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
)

// ParseAlgorithm maps a configured algorithm name to an Algorithm.
// Unknown names silently resolve to SHA256, generation never fails on a
// misspelled algorithm name.
func ParseAlgorithm(name string) Algorithm {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "SHA1":
		return SHA1
	case "SHA512":
		return SHA512
	default:
		return SHA256
	}
}

// HexLength returns the number of hex characters in a digest of this algorithm
func (a Algorithm) HexLength() int {
	switch a {
	case SHA1:
		return 40
	case SHA512:
		return 128
	default:
		return 64
	}
}

// sum computes the digest over data
func (a Algorithm) sum(data []byte) []byte {
	switch a {
	case SHA1:
		digest := sha1.Sum(data)
		return digest[:]
	case SHA512:
		digest := sha512.Sum512(data)
		return digest[:]
	default:
		digest := sha256.Sum256(data)
		return digest[:]
	}
}

// Category names one of the sampled hardware facets
type Category string

const (
	CategoryCPU       Category = "CPU"
	CategoryBIOS      Category = "BIOS"
	CategoryBaseBoard Category = "BaseBoard"
	CategoryDisk      Category = "Disk"
	CategoryTPM       Category = "TPM"
)

// categoryOrder fixes the order component values are joined in.
// Changing it changes every generated identifier.
var categoryOrder = [...]Category{CategoryCPU, CategoryBIOS, CategoryBaseBoard, CategoryDisk, CategoryTPM}

// querySpec names the CIM class and property a category is read from
type querySpec struct {
	class    string
	property string
}

var queries = map[Category]querySpec{
	CategoryCPU:       {class: "Win32_Processor", property: "ProcessorId"},
	CategoryBIOS:      {class: "Win32_BIOS", property: "SerialNumber"},
	CategoryBaseBoard: {class: "Win32_BaseBoard", property: "SerialNumber"},
	CategoryDisk:      {class: "Win32_DiskDrive", property: "SerialNumber"},
	CategoryTPM:       {class: "Win32_Tpm", property: "ManufacturerId"},
}

// Config controls identifier generation. It is passed by value and never
// mutated by this package.
type Config struct {
	Algorithm      string `yaml:"algorithm" usage:"Digest algorithm: SHA1, SHA256 or SHA512"`
	CPU            bool   `yaml:"cpu" usage:"Include the CPU identifier"`
	BIOS           bool   `yaml:"bios" usage:"Include the BIOS serial number"`
	BaseBoard      bool   `yaml:"baseboard" usage:"Include the baseboard serial number"`
	Disk           bool   `yaml:"disk" usage:"Include the disk serial number"`
	TPM            bool   `yaml:"tpm" usage:"Include the TPM manufacturer identifier"`
	QueryTimeoutMS int    `yaml:"query_timeout_ms" usage:"Timeout per attribute query in milliseconds"`
	MaxRetries     int    `yaml:"max_retries" usage:"Attempts per attribute query"`
}

// DefaultConfig returns the configuration used when none is provided
func DefaultConfig() Config {
	return Config{
		Algorithm:      string(SHA256),
		CPU:            true,
		BIOS:           true,
		BaseBoard:      true,
		Disk:           true,
		TPM:            true,
		QueryTimeoutMS: 3000,
		MaxRetries:     3,
	}
}

// Validate implements the config.Config interface. The algorithm name is
// deliberately not validated here, an unknown name downgrades to SHA256
// at generation time.
func (c *Config) Validate() error {
	if c.QueryTimeoutMS <= 0 {
		return apperror.NewError("query_timeout_ms must be positive")
	}
	if c.MaxRetries < 0 {
		return apperror.NewError("max_retries must not be negative")
	}
	return nil
}

// enabled reports whether the category is included in the generation
func (c Config) enabled(category Category) bool {
	switch category {
	case CategoryCPU:
		return c.CPU
	case CategoryBIOS:
		return c.BIOS
	case CategoryBaseBoard:
		return c.BaseBoard
	case CategoryDisk:
		return c.Disk
	case CategoryTPM:
		return c.TPM
	default:
		return false
	}
}

// categories returns the enabled categories in the fixed order
func (c Config) categories() []Category {
	var enabled []Category
	for _, category := range categoryOrder {
		if c.enabled(category) {
			enabled = append(enabled, category)
		}
	}
	return enabled
}

// queryTimeout returns the per-query deadline
func (c Config) queryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutMS) * time.Millisecond
}

// attempts returns the number of tries per query, the first try is not a retry
func (c Config) attempts() int {
	if c.MaxRetries < 1 {
		return 1
	}
	return c.MaxRetries
}
