// Package audiokit is a small toolkit of configuration plumbing for audio
// daemons and tools.
//
// The packages under pkg/ are independent and can be used separately:
//
//   - pkg/strconvx – strict text/number conversions and bounded formatting.
//   - pkg/props    – string property dictionaries with typed accessors.
//   - pkg/config   – environment-based configuration loading.
package audiokit
