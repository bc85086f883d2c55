//go:build linux && (amd64 || arm64 || arm || 386 || riscv64)

package usbfs

import "unsafe"

// usbdevfsBulkTransfer matches struct usbdevfs_bulktransfer.
type usbdevfsBulkTransfer struct {
	ep      uint32
	len     uint32
	timeout uint32 // milliseconds
	data    uintptr
}

// usbdevfsIoctl matches struct usbdevfs_ioctl.
type usbdevfsIoctl struct {
	ifno      int32
	ioctlCode int32
	data      uintptr
}

// ioctl numbers use the generic layout: nr in bits 0-7, type in 8-15,
// size in 16-29 and direction in 30-31.
const (
	iocNone  = 0
	iocWrite = 1
	iocRead  = 2

	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	usbdevfsType = 'U'
)

func ioc(dir, nr, size uintptr) uintptr {
	return dir<<iocDirShift | usbdevfsType<<iocTypeShift | nr | size<<iocSizeShift
}

var (
	ioctlBulk             = ioc(iocRead|iocWrite, 2, unsafe.Sizeof(usbdevfsBulkTransfer{}))
	ioctlClaimInterface   = ioc(iocRead, 15, unsafe.Sizeof(uint32(0)))
	ioctlReleaseInterface = ioc(iocRead, 16, unsafe.Sizeof(uint32(0)))
	ioctlIoctl            = ioc(iocRead|iocWrite, 18, unsafe.Sizeof(usbdevfsIoctl{}))
	ioctlDisconnect       = ioc(iocNone, 22, 0)
	ioctlGetSpeed         = ioc(iocNone, 31, 0)
)

// Values returned by USBDEVFS_GET_SPEED.
const (
	speedLow   = 1
	speedFull  = 2
	speedHigh  = 3
	speedSuper = 5
)
