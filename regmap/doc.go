// Package regmap names the bridge and demodulator registers this module
// touches.
//
// Addresses are opaque constants taken from the chip documentation; nothing
// here is derived at runtime. Registers in the 0x80xxxx range of the vendor
// map live in the OFDM mailbox, the rest in the link mailbox.
package regmap
