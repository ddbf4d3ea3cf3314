// Package pipeline materializes a Daisy firmware source tree for a compiled
// Heavy patch and reports the outcome.
//
// A run replaces <out>/daisy wholesale: the static assets and the patch
// sources are copied in, the board header is generated, and the wrapper
// source and Makefile are rendered into <out>/daisy/source. Run never
// panics and never returns an error; the Report says what happened.
//
// Runs share no state, but two runs must not target the same output
// directory at the same time.
package pipeline
