// Package profile provides optional runtime profiling for templet.
//
// Profiling integrates [github.com/pkg/profile] and is enabled at build
// time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, every operation is a no-op with zero overhead.
//
// Supported modes (see [Modes]): allocs, block, clock, cpu, goroutine,
// heap, mem, mutex, thread, trace. Profile files are written to the
// configured output directory with names matching the mode, e.g.
// cpu.pprof:
//
//	templet --pprof-mode=cpu --pprof-dir=/tmp/profiles render in.tpl
//	go tool pprof /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
