//go:build linux && (amd64 || arm64)

package usbfs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/moffa90/go-af9035/channel"
)

var _ channel.Transport = (*Device)(nil)

func TestIoctlNumbers(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"USBDEVFS_BULK", ioctlBulk, 0xc0185502},
		{"USBDEVFS_CLAIMINTERFACE", ioctlClaimInterface, 0x8004550f},
		{"USBDEVFS_RELEASEINTERFACE", ioctlReleaseInterface, 0x80045510},
		{"USBDEVFS_IOCTL", ioctlIoctl, 0xc0105512},
		{"USBDEVFS_DISCONNECT", ioctlDisconnect, 0x5516},
		{"USBDEVFS_GET_SPEED", ioctlGetSpeed, 0x551f},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestOpenMissingNode(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "004"), 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrUnsupported) {
		t.Errorf("unexpected ErrUnsupported on linux")
	}
}
