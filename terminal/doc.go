// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for an inline playing field.
//
// Features:
//   - Raw, non-canonical, non-echoing input without signal generation
//   - Zero-timeout readiness polling and escape sequence decoding
//   - Buffered output of pre-allocated ANSI sequences
//   - Single-shot restoration of the original terminal attributes
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
// Elsewhere Init fails with ErrUnsupportedPlatform and the terminal is left untouched.
package terminal
