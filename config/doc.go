// Package config loads the device configuration from YAML.
//
// The board EEPROM is not decoded here; its fields (dual mode, second
// demodulator address, tuner ids, IF, spectrum inversion) are written into
// the file instead:
//
//	transport:
//	  device: /dev/bus/usb/001/004
//	  timeout: 2s
//	dual_mode: false
//	adapters:
//	  - tuner: tua9001
//	    if: 4570000
//	init_tables:
//	  ofsm:
//	    - {addr: 0x0051, value: 0x01}
//	  tuner:
//	    tua9001:
//	      - {addr: 0x0046, value: 0x27}
package config
