package hwid_test

import (
	"strings"
	"testing"

	"github.com/valentin-kaiser/hwident/hwid"
)

func TestValid(t *testing.T) {
	hex64 := strings.Repeat("AB12", 16)
	hex128 := strings.Repeat("AB12", 32)

	tests := []struct {
		name      string
		candidate string
		algorithm string
		want      bool
	}{
		{name: "sha256 accepts 64 hex chars", candidate: hex64, algorithm: "SHA256", want: true},
		{name: "sha256 accepts lowercase", candidate: strings.ToLower(hex64), algorithm: "SHA256", want: true},
		{name: "sha256 rejects 128 chars", candidate: hex128, algorithm: "SHA256", want: false},
		{name: "sha512 accepts 128 hex chars", candidate: hex128, algorithm: "SHA512", want: true},
		{name: "sha512 rejects 64 chars", candidate: hex64, algorithm: "SHA512", want: false},
		{name: "sha1 digests are never accepted", candidate: strings.Repeat("AB12", 10), algorithm: "SHA1", want: false},
		{name: "sha1 config still expects 64 chars", candidate: hex64, algorithm: "SHA1", want: true},
		{name: "unknown algorithm behaves like sha256", candidate: hex64, algorithm: "whirlpool", want: true},
		{name: "rejects non hex characters", candidate: strings.Repeat("XY12", 16), algorithm: "SHA256", want: false},
		{name: "rejects embedded separator", candidate: hex64[:63] + "-", algorithm: "SHA256", want: false},
		{name: "rejects empty string", candidate: "", algorithm: "SHA256", want: false},
		{name: "rejects truncated digest", candidate: hex64[:63], algorithm: "SHA256", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := hwid.DefaultConfig()
			cfg.Algorithm = tt.algorithm
			if got := hwid.Valid(tt.candidate, cfg); got != tt.want {
				t.Errorf("Valid(%q) with %s = %v, expected %v", tt.candidate, tt.algorithm, got, tt.want)
			}
		})
	}
}
