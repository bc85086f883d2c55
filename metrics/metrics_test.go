package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/moffa90/go-af9035/firmware"
	"github.com/moffa90/go-af9035/i2cbridge"
	"github.com/moffa90/go-af9035/protocol"
)

func TestObserveExchange(t *testing.T) {
	c := New(prometheus.NewRegistry())

	c.ObserveExchange(protocol.CmdRegDemodRead, time.Millisecond, 12, 6, nil)
	c.ObserveExchange(protocol.CmdRegDemodRead, time.Millisecond, 12, 6, nil)
	c.ObserveExchange(protocol.CmdBoot, time.Millisecond, 6, 6,
		&protocol.DeviceError{Command: protocol.CmdBoot, Status: 0x01})
	c.ObserveExchange(protocol.CmdQueryInfo, time.Millisecond, 7, 2,
		&protocol.ShortTransferError{Op: "recv", Want: 9, Got: 2})

	tests := []struct {
		cmd    string
		result string
		want   float64
	}{
		{"demod register read", "ok", 2},
		{"boot", "rejected", 1},
		{"query info", "short", 1},
		{"boot", "ok", 0},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(c.requests.WithLabelValues(tt.cmd, tt.result))
		if got != tt.want {
			t.Errorf("requests{%s,%s} = %v, want %v", tt.cmd, tt.result, got, tt.want)
		}
	}

	if got := testutil.ToFloat64(c.bytes.WithLabelValues("out")); got != 37 {
		t.Errorf("bytes out = %v, want 37", got)
	}
	if got := testutil.ToFloat64(c.bytes.WithLabelValues("in")); got != 20 {
		t.Errorf("bytes in = %v, want 20", got)
	}
	if got := testutil.CollectAndCount(c.duration); got != 3 {
		t.Errorf("duration series = %d, want 3", got)
	}
}

func TestObserveRoute(t *testing.T) {
	c := New(prometheus.NewRegistry())

	c.ObserveRoute(i2cbridge.RouteTuner, nil)
	c.ObserveRoute(i2cbridge.RouteTuner, errors.New("nak"))
	c.ObserveRoute(i2cbridge.RouteDemod, protocol.ErrWouldBlock)

	if got := testutil.ToFloat64(c.i2cOps.WithLabelValues(i2cbridge.RouteTuner.String(), "ok")); got != 1 {
		t.Errorf("tuner ok = %v", got)
	}
	if got := testutil.ToFloat64(c.i2cOps.WithLabelValues(i2cbridge.RouteTuner.String(), "error")); got != 1 {
		t.Errorf("tuner error = %v", got)
	}
	if got := testutil.ToFloat64(c.i2cOps.WithLabelValues(i2cbridge.RouteDemod.String(), "busy")); got != 1 {
		t.Errorf("demod busy = %v", got)
	}
}

func TestObserveProgress(t *testing.T) {
	c := New(prometheus.NewRegistry())

	c.ObserveProgress(firmware.Progress{State: firmware.StateSegment, BytesSent: 114, Percentage: 45})
	if got := testutil.ToFloat64(c.firmwareBytes); got != 114 {
		t.Errorf("firmware bytes = %v", got)
	}
	if got := testutil.ToFloat64(c.firmwareProgress); got != 45 {
		t.Errorf("firmware progress = %v", got)
	}

	c.ObserveProgress(firmware.Progress{State: firmware.StateDone, BytesSent: 228, Percentage: 100})
	c.ObserveProgress(firmware.Progress{State: firmware.StateFailed})
	if got := testutil.ToFloat64(c.firmwareLoads.WithLabelValues("ok")); got != 1 {
		t.Errorf("loads ok = %v", got)
	}
	if got := testutil.ToFloat64(c.firmwareLoads.WithLabelValues("error")); got != 1 {
		t.Errorf("loads error = %v", got)
	}
}

func TestRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Error("expected duplicate registration to panic")
		}
	}()
	New(reg)
}
