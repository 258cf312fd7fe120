package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"

	"github.com/audioforge/audiokit/pkg/strconvx"
)

// strictParsers overrides env's built-in handling of sized numeric fields
// with the strict full-consumption parsers. Integer fields gain 0x/0o/0b
// prefix support; partially numeric or out-of-range values fail the load.
func strictParsers() map[reflect.Type]env.ParserFunc {
	return map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(int32(0)): func(v string) (any, error) {
			var out int32
			if !strconvx.ParseInt32(v, 0, &out) {
				return nil, fmt.Errorf("%q is not a valid int32", v)
			}
			return out, nil
		},
		reflect.TypeOf(uint32(0)): func(v string) (any, error) {
			var out uint32
			if !strconvx.ParseUint32(v, 0, &out) {
				return nil, fmt.Errorf("%q is not a valid uint32", v)
			}
			return out, nil
		},
		reflect.TypeOf(int64(0)): func(v string) (any, error) {
			var out int64
			if !strconvx.ParseInt64(v, 0, &out) {
				return nil, fmt.Errorf("%q is not a valid int64", v)
			}
			return out, nil
		},
		reflect.TypeOf(uint64(0)): func(v string) (any, error) {
			var out uint64
			if !strconvx.ParseUint64(v, 0, &out) {
				return nil, fmt.Errorf("%q is not a valid uint64", v)
			}
			return out, nil
		},
		reflect.TypeOf(float32(0)): func(v string) (any, error) {
			var out float32
			if !strconvx.ParseFloat32(v, &out) {
				return nil, fmt.Errorf("%q is not a valid float32", v)
			}
			return out, nil
		},
		reflect.TypeOf(float64(0)): func(v string) (any, error) {
			var out float64
			if !strconvx.ParseFloat64(v, &out) {
				return nil, fmt.Errorf("%q is not a valid float64", v)
			}
			return out, nil
		},
	}
}
