package hwid

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/valentin-kaiser/hwident/wmi"
)

// Result describes one identifier generation run. It is returned by value
// and never mutated afterwards.
type Result struct {
	RequestID   string              `json:"request_id"`
	Identifier  string              `json:"identifier"`
	GeneratedAt time.Time           `json:"generated_at"`
	Components  map[Category]string `json:"components"`
	Succeeded   bool                `json:"succeeded"`
	Canceled    bool                `json:"canceled,omitempty"`
	ErrorDetail string              `json:"error_detail,omitempty"`
	Algorithm   Algorithm           `json:"algorithm"`
}

// Generator derives hardware identifiers through an attribute source
type Generator struct {
	source wmi.Source
	cfg    Config
}

// New creates a generator backed by the local CIM installation
func New(cfg Config) *Generator {
	return &Generator{source: wmi.NewCIMSource(), cfg: cfg}
}

// NewWithSource creates a generator reading from a custom attribute source
func NewWithSource(source wmi.Source, cfg Config) *Generator {
	return &Generator{source: source, cfg: cfg}
}

// Generate collects the enabled hardware components, joins them and hashes
// the result. It never panics and never returns an error: every failure
// mode is encoded in the result. A run that produced an identifier from the
// machine-name fallback is still a success, merely a degraded one, since
// the fallback changes on every call.
func (g *Generator) Generate(ctx context.Context) (result Result) {
	result = Result{
		RequestID:   uuid.NewString(),
		GeneratedAt: time.Now(),
		Algorithm:   ParseAlgorithm(g.cfg.Algorithm),
	}

	defer func() {
		if r := recover(); r != nil {
			result.Identifier = ""
			result.Succeeded = false
			result.ErrorDetail = fmt.Sprintf("%v", r)
			logger.Error().
				Field("request_id", result.RequestID).
				Field("reason", result.ErrorDetail).
				Msg("identifier generation failed")
		}
	}()

	logger.Info().
		Field("request_id", result.RequestID).
		Field("algorithm", string(result.Algorithm)).
		Msg("generating hardware identifier")

	result.Components = (&collector{source: g.source, cfg: g.cfg}).collect(ctx)

	if err := ctx.Err(); err != nil {
		result.Canceled = true
		result.ErrorDetail = "generation canceled: " + err.Error()
		logger.Warn().
			Field("request_id", result.RequestID).
			Msg("identifier generation canceled")
		return result
	}

	joined := joinComponents(result.Components)
	if joined == "" {
		joined = fallbackSeed()
		logger.Warn().
			Field("request_id", result.RequestID).
			Msg("no hardware components available, using unstable fallback identifier")
	}

	result.Identifier = strings.ToUpper(hex.EncodeToString(result.Algorithm.sum([]byte(joined))))
	result.Succeeded = true

	logger.Info().
		Field("request_id", result.RequestID).
		Field("identifier", result.Identifier).
		Msg("hardware identifier generated")
	return result
}

// Valid reports whether the candidate has the shape of an identifier the
// generator's configuration would produce
func (g *Generator) Valid(candidate string) bool {
	return Valid(candidate, g.cfg)
}

// joinComponents joins the non-empty component values with "-" in the
// fixed category order. Two runs with the same values in the same
// availability pattern always produce byte-identical output.
func joinComponents(components map[Category]string) string {
	var parts []string
	for _, category := range categoryOrder {
		if value, ok := components[category]; ok && value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, "-")
}

// fallbackSeed builds the degraded seed from the machine name and the
// current tick count. It intentionally changes on every call.
func fallbackSeed() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}
	return hostname + strconv.FormatInt(time.Now().UnixNano(), 10)
}
