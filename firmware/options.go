package firmware

import "github.com/moffa90/go-af9035/protocol"

// Config holds the loader configuration.
type Config struct {
	// ProgressCallback is called during loading to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// ChunkSize is the maximum segment bytes per frame.
	// Default is 57 bytes, the largest payload a frame can carry.
	ChunkSize int
}

func defaultConfig() Config {
	return Config{
		ChunkSize: protocol.FirmwareChunkSize,
	}
}

// Option is a functional option for configuring the Loader.
type Option func(*Config)

// WithProgressCallback sets a callback function to track download progress.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the loader operations.
//
// Example:
//
//	loader := firmware.New(ch, firmware.WithLogger(slog.Default()))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithChunkSize sets the maximum segment bytes per frame. Values outside
// 1..57 are ignored.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= protocol.FirmwareChunkSize {
			c.ChunkSize = size
		}
	}
}
