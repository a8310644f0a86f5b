// Package app provides the orchestration layer for loglens.
//
// # Overview
//
// This package wires together configuration, diagnostics logging, the
// analyzer and the optional pager. It is the composition root: the CLI
// parses flags into Options and hands them to Run.
//
// # Run Sequence
//
//  1. Load the config file (defaults when missing)
//  2. Initialize zap diagnostics on stderr and store the logger in ctx
//  3. Resolve level filter, color mode and pager from flags over config
//  4. Run the analyzer, straight to stdout or into a buffer for the pager
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()    Read defaults
//	       ├─────> logger.Init()    Diagnostics to stderr
//	       ├─────> render.New()     Level colors for the color mode
//	       ├─────> analyzer.Run()   Scan file, write report
//	       └─────> pager.Run()      Optional, blocks until quit
//
// # Output Streams
//
// Stdout carries the report and nothing else. Diagnostics go to stderr or
// the configured log file. When the pager is requested but stdout is not a
// terminal, the report is printed instead.
//
// # Error Handling
//
// Run returns analyzer errors unwrapped so callers can match
// analyzer.ErrFileNotFound and analyzer.ErrFileUnreadable with errors.Is.
// Config failures are wrapped as "load config: ...".
package app
