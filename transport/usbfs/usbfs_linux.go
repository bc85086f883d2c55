//go:build linux && (amd64 || arm64 || arm || 386 || riscv64)

package usbfs

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/moffa90/go-af9035/protocol"
)

// Device is an opened usbfs device node with its control interface
// claimed.
type Device struct {
	path  string
	iface uint32
	opts  options

	mu sync.Mutex
	fd int // -1 once closed
}

// Open opens the device node at path and claims interface iface.
func Open(path string, iface uint32, opts ...Option) (*Device, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("usbfs: open %s: %w", path, err)
	}

	d := &Device{path: path, iface: iface, opts: o, fd: fd}

	if o.detach {
		if err := d.detachKernelDriver(); err != nil && !errors.Is(err, unix.ENODATA) {
			unix.Close(fd)
			return nil, fmt.Errorf("usbfs: detach kernel driver: %w", err)
		}
	}

	if err := d.ioctlArg(ioctlClaimInterface, unsafe.Pointer(&d.iface)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("usbfs: claim interface %d: %w", iface, err)
	}

	d.logDebug("usbfs device opened", "path", path, "interface", iface)
	return d, nil
}

// Send writes p to the outbound bulk endpoint.
func (d *Device) Send(p []byte, timeout time.Duration) (int, error) {
	return d.bulk(protocol.EndpointOut, p, timeout)
}

// Recv reads one frame from the inbound bulk endpoint into p.
func (d *Device) Recv(p []byte, timeout time.Duration) (int, error) {
	return d.bulk(protocol.EndpointIn, p, timeout)
}

func (d *Device) bulk(ep uint32, p []byte, timeout time.Duration) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fd < 0 {
		return 0, unix.EBADF
	}

	xfer := usbdevfsBulkTransfer{
		ep:      ep,
		len:     uint32(len(p)),
		timeout: uint32(timeout / time.Millisecond),
	}
	if len(p) > 0 {
		xfer.data = uintptr(unsafe.Pointer(&p[0]))
	}

	n, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), ioctlBulk, uintptr(unsafe.Pointer(&xfer)))
	runtime.KeepAlive(p)
	if errno != 0 {
		return 0, fmt.Errorf("bulk ep 0x%02x: %w", ep, errno)
	}
	return int(n), nil
}

// HighSpeed reports whether the device is attached at USB 2.0 high speed
// or faster.
func (d *Device) HighSpeed() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), ioctlGetSpeed, 0)
	if errno != 0 {
		return false, fmt.Errorf("usbfs: get speed: %w", errno)
	}
	return r >= speedHigh, nil
}

// Close releases the interface and closes the device node.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fd < 0 {
		return nil
	}

	rerr := d.ioctlArg(ioctlReleaseInterface, unsafe.Pointer(&d.iface))
	cerr := unix.Close(d.fd)
	d.fd = -1
	d.logDebug("usbfs device closed", "path", d.path)

	if rerr != nil {
		return fmt.Errorf("usbfs: release interface: %w", rerr)
	}
	return cerr
}

func (d *Device) detachKernelDriver() error {
	cmd := usbdevfsIoctl{
		ifno:      int32(d.iface),
		ioctlCode: int32(ioctlDisconnect),
	}
	return d.ioctlArg(ioctlIoctl, unsafe.Pointer(&cmd))
}

func (d *Device) ioctlArg(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func (d *Device) logDebug(msg string, keysAndValues ...interface{}) {
	if d.opts.logger != nil {
		d.opts.logger.Debug(msg, keysAndValues...)
	}
}
