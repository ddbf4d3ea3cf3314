// Package meta loads the optional patch metadata document that tunes
// generation for a Daisy target: board selection, audio settings, build
// options and wrapper feature flags.
//
// Example:
//
//	name: Synth
//	daisy:
//	  board: patch
//	  samplerate: 96000
//	  blocksize: 32
//	  usb_midi: true
//	  libdaisy_path: ../../libs/libDaisy
package meta
