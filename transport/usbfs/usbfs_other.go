//go:build !linux || !(amd64 || arm64 || arm || 386 || riscv64)

package usbfs

import "time"

// Device is unavailable on this platform.
type Device struct{}

// Open always fails with ErrUnsupported.
func Open(path string, iface uint32, opts ...Option) (*Device, error) {
	return nil, ErrUnsupported
}

func (d *Device) Send(p []byte, timeout time.Duration) (int, error) { return 0, ErrUnsupported }
func (d *Device) Recv(p []byte, timeout time.Duration) (int, error) { return 0, ErrUnsupported }
func (d *Device) HighSpeed() (bool, error) { return false, ErrUnsupported }
func (d *Device) Close() error { return nil }
