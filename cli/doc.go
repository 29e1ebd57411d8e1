// Package cli contains the command line interface for templet.
//
// # Commands
//
//	templet render <template> [--data file] [--output file]
//	templet check  <template>
//
// The render command parses a template file (or stdin with "-"), loads a
// YAML or JSON context from --data, and writes the expansion to --output
// or stdout. The check command parses without rendering and reports
// syntax errors.
//
// # Logging options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: output format (json, text)
//   - --log-time-layout: timestamp format (RFC3339, RFC3339Nano, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorized output
//
// # Profiling options
//
// Available only when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory
package cli
