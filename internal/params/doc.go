// Package params models the runtime parameters a compiled Heavy patch
// exposes, loads them from the compiler's externs document, and removes
// the MIDI output events that travel on their own protocol path.
package params
