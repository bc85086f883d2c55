// Command af9035ctl brings up an AF9035 DVB-T stick over Linux usbfs: it
// loads the firmware if needed, initializes the demodulators and tuners,
// optionally tunes a channel and serves Prometheus metrics.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	af9035 "github.com/moffa90/go-af9035"
	"github.com/moffa90/go-af9035/config"
	"github.com/moffa90/go-af9035/firmware"
	"github.com/moffa90/go-af9035/fwimage"
	"github.com/moffa90/go-af9035/metrics"
	"github.com/moffa90/go-af9035/transport/usbfs"
	"github.com/moffa90/go-af9035/tuning"
)

const Version = "v0.1.0"

func main() {
	var (
		configFile  = pflag.StringP("config", "c", "", "YAML device configuration (default: single TUA9001 stick)")
		device      = pflag.StringP("device", "d", "", "usbfs device node, e.g. /dev/bus/usb/001/004")
		fwFile      = pflag.StringP("firmware", "f", "", "Firmware image loaded when the device is cold")
		frequency   = pflag.Uint32P("frequency", "F", 0, "Channel centre frequency in Hz (0 = do not tune)")
		bandwidth   = pflag.UintP("bandwidth", "b", 8, "Channel bandwidth in MHz (6, 7 or 8)")
		logLevel    = pflag.String("log-level", "", "Log level (debug, info, warn, error)")
		logFormat   = pflag.String("log-format", "", "Log format (text, json)")
		metricsAddr = pflag.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9035")
		inspect     = pflag.Bool("inspect", false, "Print the firmware image segments and exit")

		version = pflag.BoolP("version", "v", false, "Print version and exit")
	)

	pflag.Parse()

	if *version {
		fmt.Printf("af9035ctl %s\n", Version)
		os.Exit(0)
	}

	if *inspect {
		if err := inspectImage(os.Stdout, *fwFile); err != nil {
			fmt.Fprintf(os.Stderr, "af9035ctl: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "af9035ctl: %v\n", err)
			os.Exit(1)
		}
	}
	if *device != "" {
		cfg.Transport.Device = *device
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Logging.Format = *logFormat
	}
	if *metricsAddr != "" {
		cfg.Metrics.Listen = *metricsAddr
	}

	logger, err := newLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "af9035ctl: %v\n", err)
		os.Exit(1)
	}

	bw, err := parseBandwidth(*bandwidth)
	if err != nil {
		logger.Error("bad flag", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := runOptions{
		firmware:  *fwFile,
		frequency: *frequency,
		bandwidth: bw,
	}
	if err := run(ctx, cfg, opts, logger); err != nil {
		logger.Error("af9035ctl failed", "error", err)
		os.Exit(1)
	}
}

// parseBandwidth maps the --bandwidth value in MHz to a channel bandwidth.
func parseBandwidth(mhz uint) (tuning.Bandwidth, error) {
	switch mhz {
	case 6:
		return tuning.Bandwidth6MHz, nil
	case 7:
		return tuning.Bandwidth7MHz, nil
	case 8:
		return tuning.Bandwidth8MHz, nil
	default:
		return 0, fmt.Errorf("--bandwidth %d: want 6, 7 or 8 MHz", mhz)
	}
}

type runOptions struct {
	firmware  string
	frequency uint32
	bandwidth tuning.Bandwidth
}

func run(ctx context.Context, cfg *config.Config, opts runOptions, logger af9035.Logger) error {
	if cfg.Transport.Device == "" {
		return errors.New("no device node, set --device or transport.device")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	usb, err := usbfs.Open(cfg.Transport.Device, cfg.Transport.Interface, usbfs.WithLogger(logger))
	if err != nil {
		return err
	}

	dev, err := af9035.New(usb, cfg,
		af9035.WithLogger(logger),
		af9035.WithMetrics(metrics.New(reg)),
		af9035.WithProgressCallback(func(p firmware.Progress) {
			if p.State == firmware.StateSegment {
				logger.Debug("firmware", "segment", p.Segment, "percent", fmt.Sprintf("%.1f", p.Percentage))
			}
		}),
	)
	if err != nil {
		if cerr := usb.Close(); cerr != nil {
			logger.Warn("close failed", "device", cfg.Transport.Device, "error", cerr)
		}
		return err
	}
	defer dev.Close()

	var img *fwimage.Image
	if opts.firmware != "" {
		if img, err = fwimage.Parse(opts.firmware); err != nil {
			return err
		}
	}

	adapters, err := dev.Start(ctx, img)
	if err != nil {
		return err
	}
	logger.Info("device ready", "adapters", len(adapters), "dual", dev.DualMode(), "high_speed", dev.HighSpeed())

	if opts.frequency != 0 {
		for _, a := range adapters {
			if err := dev.Tune(ctx, a.Index, opts.frequency, opts.bandwidth); err != nil {
				return err
			}
		}
	}

	if cfg.Metrics.Listen == "" {
		return nil
	}

	srv := &http.Server{
		Addr:              cfg.Metrics.Listen,
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("serving metrics", "addr", cfg.Metrics.Listen)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		logger.Warn("metrics server shutdown failed", "error", err)
	}

	for _, a := range adapters {
		if err := dev.Sleep(shutdown, a.Index); err != nil {
			logger.Warn("sleep failed", "adapter", a.Index, "error", err)
		}
	}
	return nil
}
