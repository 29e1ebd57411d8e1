// Package cmd implements the templet subcommands.
//
// Each command is a kong-compatible struct with a Run method receiving
// the application context. Template input comes from a file argument or
// stdin ("-"); context data is decoded from YAML or JSON with
// [lang.MappingFromAny].
package cmd
