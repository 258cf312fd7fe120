package strconvx

import "fmt"

// Snprintf formats args according to format into buf, never writing past
// len(buf) bytes in total.
//
// The written bytes are always followed by a NUL terminator, so at most
// len(buf)-1 bytes of output are produced. When the formatted text fits,
// Snprintf returns its exact length. When it does not, the output is
// truncated to len(buf)-1 bytes plus terminator and the return value is
// clamped to len(buf)-1; a caller distinguishes "fit exactly" from
// "truncated" by whether more room would change the result.
//
// A zero-length buf cannot hold even the terminator. Passing one is a
// programmer error, not a data error, and panics.
func Snprintf(buf []byte, format string, args ...any) int {
	if len(buf) == 0 {
		panic("strconvx: Snprintf into zero-length buffer")
	}
	// The three-index slice caps Appendf at len(buf): output that fits is
	// formatted in place, anything larger lands in a scratch allocation
	// and only the surviving prefix is copied back.
	out := fmt.Appendf(buf[0:0:len(buf)], format, args...)
	n := len(out)
	if n > len(buf)-1 {
		n = len(buf) - 1
	}
	copy(buf, out[:n])
	buf[n] = 0
	return n
}
