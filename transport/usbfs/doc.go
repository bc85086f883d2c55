// Package usbfs is a channel.Transport over Linux usbfs bulk transfers.
//
// The device node is opened directly (/dev/bus/usb/BBB/DDD) and the control
// interface is claimed, detaching the kernel driver if one is bound.
// Request frames go out on endpoint 0x02 and responses come back on 0x81.
//
// Discovering which node belongs to the receiver is left to the caller.
package usbfs
