// Package binding assigns patch parameters to the physical controls of a
// board and assembles the generation context the templates render.
//
// A parameter binds when its name, ignoring case and separators, equals a
// control name (or one of the control's aliases) plus a variant suffix:
//
//	knob1          AnalogControl value
//	sw1_rise       Switch rising edge
//	encoder_press  Encoder push button
//	led1_red       RgbLed red channel
//
// Parameters that match no free control are left unbound. That is not an
// error: the patch still runs, the parameter just has no hardware source.
package binding
