// Package tuning converts physical frequencies into AF9033 register values.
//
// The demodulator has no floating point datapath. Clock and frequency
// ratios are programmed as fixed-point control words produced by Div, a
// bit-serial divider:
//
//	Div(a, b, n) = floor(a * 2^n / b)
//
// Crystal and ADC control words use 19 fraction bits, the frequency control
// word 23. The CFOE coefficients are not computed; they come from a table
// keyed by ADC clock and bandwidth, and an unknown combination is an error
// rather than an approximation.
package tuning
