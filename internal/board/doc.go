// Package board resolves a Daisy board, by built-in name or by description
// file, into its hardware capability descriptor and the generated C++
// header that declares and initialises the board's controls.
//
// Board descriptions are YAML (or JSON) documents:
//
//	name: DaisyPod
//	som: seed
//	channels: 2
//	has_midi: true
//	components:
//	  - name: knob1
//	    type: AnalogControl
//	    pins: {pin: 21}
//	aliases:
//	  knob: knob1
package board
