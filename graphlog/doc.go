// Package graphlog is a thin structured-logging wrapper around zerolog
// used by pfs and pagerank to emit debug-level run diagnostics (spec §6
// "logging" collaborator). Logging is silent by default — the package-level
// Logger starts as zerolog.Nop() — matching how production libraries in
// this lineage keep observability optional rather than forcing output on
// every caller.
package graphlog
