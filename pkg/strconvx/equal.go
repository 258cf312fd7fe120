package strconvx

// Equal reports whether a and b hold identical text.
//
// A nil pointer is the absent value: two absent values are equal, an absent
// and a present value are not, and two present values are equal only when
// their bytes match exactly. No case folding is applied.
func Equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// EqualN reports whether the first n bytes of a and b are identical, with
// the same absence rules as Equal. A value shorter than n participates with
// its full length, so EqualN of "ab" and "ab" with n=8 is true while "ab"
// and "abc" is not. n <= 0 compares empty prefixes.
func EqualN(a, b *string, n int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return prefix(*a, n) == prefix(*b, n)
}

func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n < len(s) {
		return s[:n]
	}
	return s
}
