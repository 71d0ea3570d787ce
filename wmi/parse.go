package wmi

import (
	"strconv"
	"strings"
)

// oemPlaceholder is the value BIOS vendors leave in serial number fields
// they never filled in
const oemPlaceholder = "To be filled by O.E.M."

// firstValue returns the first non-empty, non-placeholder line of command
// output, or an empty string when there is none
func firstValue(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		switch line {
		case "", oemPlaceholder:
			continue
		default:
			return line
		}
	}
	return ""
}

// byteValues parses array output where every element is an integer in the
// byte range, the way PowerShell prints a byte-array property one element
// per line. A single line is never treated as an array so plain numeric
// properties keep their string representation.
func byteValues(output string) ([]byte, bool) {
	var values []byte
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n > 255 {
			return nil, false
		}
		values = append(values, byte(n))
	}

	if len(values) < 2 {
		return nil, false
	}
	return values, true
}
