package hwid

// Valid reports whether the candidate has the shape of an identifier the
// configured algorithm would produce: the expected length and hex digits
// only, in either case.
//
// The length check only distinguishes SHA512 from everything else. With
// SHA1 configured the validator still expects 64 characters and therefore
// rejects every real 40 character SHA1 digest. This mismatch is inherited
// behavior and kept deliberately, callers configuring SHA1 must not rely
// on Valid.
func Valid(candidate string, cfg Config) bool {
	if candidate == "" {
		return false
	}

	expected := 64
	if ParseAlgorithm(cfg.Algorithm) == SHA512 {
		expected = 128
	}
	if len(candidate) != expected {
		return false
	}

	for i := 0; i < len(candidate); i++ {
		if !isHexDigit(candidate[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
