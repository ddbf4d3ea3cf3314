// Package gen renders and writes the generated parts of a Daisy source tree.
//
// Generation uses text/template with missingkey=error, so a context that
// lacks a key a template needs fails instead of emitting a blank.
//
// Templates:
//   - HeavyDaisy.cpp: audio callback, MIDI glue and control bindings
//   - Makefile: libDaisy build description
package gen
