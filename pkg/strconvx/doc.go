// Package strconvx provides strict, allocation-conscious conversions between
// text and primitive values, plus a bounded buffer formatter.
//
// The package exists to back configuration and command-line value handling,
// where partially numeric input ("8080x", "1.5GB") must be rejected rather
// than silently truncated. Every parser consumes its whole input or fails,
// and a failed parse never touches the destination, so callers can pre-load
// a default and keep it on bad input:
//
//	port := int32(4713)
//	strconvx.ParseInt32(os.Getenv("DAEMON_PORT"), 0, &port)
//
// Equality helpers treat a nil *string as an absent value distinct from the
// empty string, which matters when a lookup distinguishes "unset" from
// "set to nothing".
//
// Snprintf writes formatted output into a caller-owned fixed-size buffer,
// truncating safely instead of overrunning; see its documentation for the
// length-reporting contract.
//
// Numeric grammar follows the standard library's strconv package exactly:
// no surrounding whitespace is accepted, and integer base 0 auto-detects
// the usual 0x/0o/0b prefixes.
//
// All functions are stateless and safe for concurrent use.
package strconvx
