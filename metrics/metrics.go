package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/moffa90/go-af9035/channel"
	"github.com/moffa90/go-af9035/firmware"
	"github.com/moffa90/go-af9035/i2cbridge"
	"github.com/moffa90/go-af9035/protocol"
)

const namespace = "af9035"

// Collector holds the Prometheus metrics of one device. It implements
// channel.Observer and i2cbridge.Observer, and ObserveProgress can be
// passed as a firmware progress callback.
type Collector struct {
	requests *prometheus.CounterVec   // exchanges by command and result
	duration *prometheus.HistogramVec // exchange latency by command
	bytes    *prometheus.CounterVec   // frame bytes by direction

	i2cOps *prometheus.CounterVec // I2C operations by route and result

	firmwareBytes    prometheus.Gauge       // segment bytes sent by the current load
	firmwareProgress prometheus.Gauge       // percent complete of the current load
	firmwareLoads    *prometheus.CounterVec // finished loads by result
}

var (
	_ channel.Observer   = (*Collector)(nil)
	_ i2cbridge.Observer = (*Collector)(nil)
)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Control pipe exchanges by command and result",
			},
			[]string{"command", "result"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Control pipe exchange latency",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"command"},
		),
		bytes: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "frame_bytes_total",
				Help:      "Bytes moved over the control pipe",
			},
			[]string{"direction"},
		),
		i2cOps: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "i2c_operations_total",
				Help:      "I2C bridge operations by route and result",
			},
			[]string{"route", "result"},
		),
		firmwareBytes: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "firmware_bytes_sent",
				Help:      "Segment bytes sent by the current firmware load",
			},
		),
		firmwareProgress: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "firmware_progress_percent",
				Help:      "Completion of the current firmware load",
			},
		),
		firmwareLoads: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "firmware_loads_total",
				Help:      "Finished firmware loads by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveExchange records one control pipe exchange.
func (c *Collector) ObserveExchange(cmd byte, elapsed time.Duration, sent, received int, err error) {
	name := protocol.CommandName(cmd)
	c.requests.WithLabelValues(name, result(err)).Inc()
	c.duration.WithLabelValues(name).Observe(elapsed.Seconds())
	c.bytes.WithLabelValues("out").Add(float64(sent))
	c.bytes.WithLabelValues("in").Add(float64(received))
}

// ObserveRoute records one I2C bridge operation.
func (c *Collector) ObserveRoute(route i2cbridge.Route, err error) {
	c.i2cOps.WithLabelValues(route.String(), result(err)).Inc()
}

// ObserveProgress records firmware loader progress.
func (c *Collector) ObserveProgress(p firmware.Progress) {
	c.firmwareBytes.Set(float64(p.BytesSent))
	c.firmwareProgress.Set(p.Percentage)

	switch p.State {
	case firmware.StateDone:
		c.firmwareLoads.WithLabelValues("ok").Inc()
	case firmware.StateFailed:
		c.firmwareLoads.WithLabelValues("error").Inc()
	}
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, protocol.ErrDeviceRejected):
		return "rejected"
	case errors.Is(err, protocol.ErrWouldBlock):
		return "busy"
	case errors.Is(err, protocol.ErrShortTransfer):
		return "short"
	default:
		return "error"
	}
}
