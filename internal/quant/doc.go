// Package quant snaps requested runtime configuration to values the Daisy
// hardware actually supports.
//
// Key functions:
//   - SampleRate: degrades a requested rate to the nearest supported tier below it
//   - BlockSize: clamps an optional audio block size to the codec's range
package quant
