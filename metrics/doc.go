// Package metrics exports control pipe, I2C bridge and firmware loader
// activity as Prometheus metrics.
package metrics
