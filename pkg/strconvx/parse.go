package strconvx

import "strconv"

// ParseBool reports whether s spells a true value.
//
// Only the exact literals "true" and "1" count as true; every other input,
// including "TRUE", "false", "0" and the empty string, yields false. Unlike
// the numeric parsers there is no separate failure signal: this function is
// total.
func ParseBool(s string) bool {
	return s == "true" || s == "1"
}

// ParseInt32 converts s to an int32 in the given base and stores the result
// in *dst.
//
// The whole of s must be a single valid integer literal: no surrounding
// whitespace, no trailing bytes and no value outside the int32 range. base
// follows strconv.ParseInt: 2 through 36, or 0 to derive the base from the
// standard 0x/0o/0b prefixes (a bare leading 0 means octal).
//
// On failure *dst is left unmodified and ParseInt32 returns false.
func ParseInt32(s string, base int, dst *int32) bool {
	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return false
	}
	*dst = int32(v)
	return true
}

// ParseUint32 converts s to a uint32 in the given base and stores the result
// in *dst. The contract matches ParseInt32: full consumption, range checked
// against the uint32 bounds, *dst untouched on failure. Negative input is
// rejected rather than wrapped.
func ParseUint32(s string, base int, dst *uint32) bool {
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return false
	}
	*dst = uint32(v)
	return true
}

// ParseInt64 converts s to an int64 in the given base and stores the result
// in *dst, with the same strict contract as ParseInt32 at 64-bit width.
func ParseInt64(s string, base int, dst *int64) bool {
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return false
	}
	*dst = v
	return true
}

// ParseUint64 converts s to a uint64 in the given base and stores the result
// in *dst, with the same strict contract as ParseUint32 at 64-bit width.
func ParseUint64(s string, base int, dst *uint64) bool {
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return false
	}
	*dst = v
	return true
}

// ParseFloat32 converts s to a float32 and stores the result in *dst.
//
// The whole of s must be one valid floating-point literal per strconv's
// grammar (which admits "inf" and "nan" spellings). A finite value whose
// magnitude overflows float32 is a failure, not a saturation. On failure
// *dst is left unmodified.
func ParseFloat32(s string, dst *float32) bool {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return false
	}
	*dst = float32(v)
	return true
}

// ParseFloat64 converts s to a float64 and stores the result in *dst, with
// the same contract as ParseFloat32 at double width.
func ParseFloat64(s string, dst *float64) bool {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	*dst = v
	return true
}
