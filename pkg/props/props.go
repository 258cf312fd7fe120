package props

import (
	"fmt"
	"maps"
	"slices"

	"github.com/audioforge/audiokit/pkg/strconvx"
)

// Properties is a mutable dictionary of string keys and string values.
// The zero value is not usable; construct instances with New or FromMap.
type Properties struct {
	m map[string]string
}

// New builds a dictionary from alternating key/value pairs. A trailing key
// without a value is ignored.
func New(pairs ...string) *Properties {
	p := &Properties{m: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		p.m[pairs[i]] = pairs[i+1]
	}
	return p
}

// FromMap builds a dictionary from a copy of m.
func FromMap(m map[string]string) *Properties {
	return &Properties{m: maps.Clone(m)}
}

// Get returns the raw value stored under key and whether the key exists.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.m[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (p *Properties) Set(key, value string) {
	p.m[key] = value
}

// SetFormat stores the rendering of format and args under key.
func (p *Properties) SetFormat(key, format string, args ...any) {
	p.m[key] = fmt.Sprintf(format, args...)
}

// Delete removes key from the dictionary.
func (p *Properties) Delete(key string) {
	delete(p.m, key)
}

// Len returns the number of stored entries.
func (p *Properties) Len() int {
	return len(p.m)
}

// Keys returns all keys in sorted order.
func (p *Properties) Keys() []string {
	keys := make([]string, 0, len(p.m))
	for k := range p.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns an independent copy of the dictionary.
func (p *Properties) Clone() *Properties {
	return &Properties{m: maps.Clone(p.m)}
}

// Update merges other into p; on key collisions other wins.
func (p *Properties) Update(other *Properties) {
	maps.Copy(p.m, other.m)
}

// Bool returns the value under key interpreted as a boolean, or def when
// the key is absent. A present value counts as true only when it is the
// exact literal "true" or "1".
func (p *Properties) Bool(key string, def bool) bool {
	if s, ok := p.m[key]; ok {
		return strconvx.ParseBool(s)
	}
	return def
}

// Int32 returns the value under key as an int32, or def when the key is
// absent or the value is not a clean in-range integer. Integer values may
// use the 0x/0o/0b prefixes.
func (p *Properties) Int32(key string, def int32) int32 {
	v := def
	if s, ok := p.m[key]; ok {
		strconvx.ParseInt32(s, 0, &v)
	}
	return v
}

// Uint32 is Int32 for unsigned 32-bit values.
func (p *Properties) Uint32(key string, def uint32) uint32 {
	v := def
	if s, ok := p.m[key]; ok {
		strconvx.ParseUint32(s, 0, &v)
	}
	return v
}

// Int64 is Int32 for 64-bit values.
func (p *Properties) Int64(key string, def int64) int64 {
	v := def
	if s, ok := p.m[key]; ok {
		strconvx.ParseInt64(s, 0, &v)
	}
	return v
}

// Uint64 is Int32 for unsigned 64-bit values.
func (p *Properties) Uint64(key string, def uint64) uint64 {
	v := def
	if s, ok := p.m[key]; ok {
		strconvx.ParseUint64(s, 0, &v)
	}
	return v
}

// Float32 returns the value under key as a float32, or def when the key is
// absent or the value is not a clean floating-point literal.
func (p *Properties) Float32(key string, def float32) float32 {
	v := def
	if s, ok := p.m[key]; ok {
		strconvx.ParseFloat32(s, &v)
	}
	return v
}

// Float64 is Float32 at double width.
func (p *Properties) Float64(key string, def float64) float64 {
	v := def
	if s, ok := p.m[key]; ok {
		strconvx.ParseFloat64(s, &v)
	}
	return v
}
