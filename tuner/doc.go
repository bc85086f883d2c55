// Package tuner holds the tuner chips an AF9035 board can carry.
//
// The set is closed: Kind names every tuner the firmware knows. TUA9001 is
// driven by the built-in driver in this package, which talks to the chip
// through any periph.io i2c.Bus (normally the bridge's tuner proxy). Drivers
// for MxL5007T and TDA18218 are supplied by the caller through the
// Tuner interface; FC0011 is recognized but cannot be attached.
package tuner
