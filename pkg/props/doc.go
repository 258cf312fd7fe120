// Package props implements string-keyed property dictionaries, the
// configuration currency of the audio stack.
//
// Every value is stored as a string; typed accessors convert on the way out
// using the strict parsers from pkg/strconvx and fall back to a caller
// default when the key is missing or the stored text is not a clean numeral:
//
//	p := props.New(
//	    "audio.rate", "48000",
//	    "audio.channels", "2",
//	)
//	rate := p.Int32("audio.rate", 44100)    // 48000
//	depth := p.Int32("audio.bit-depth", 16) // key absent, default kept
//
// Properties marshal to and from YAML as a flat mapping, so a dictionary can
// be embedded directly in larger configuration documents. Scalar YAML values
// of any type are accepted on the way in and keep their literal rendering.
//
// Properties is a plain map underneath and is not safe for concurrent
// mutation; guard shared instances the same way you would a map.
package props
