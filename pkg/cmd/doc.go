// Package cmd implements the mapperkit CLI commands.
//
// Two commands are provided: "extract" parses mapper XML files and writes
// the embedded SQL statements to stdout or alongside the sources, and
// "check" runs the review rules and reports findings, failing the run
// when any error-severity finding exists.
//
// Both commands accept file or directory paths; directories are walked
// recursively for .xml files. When no paths are given, the paths from the
// project config (mapperkit.yaml) are used.
package cmd
