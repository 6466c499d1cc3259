package rng

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/tarm/serial"
)

// NewEntropyFromEnv builds the process entropy source.
//
// When SERIAL_DEVICE_NAME is set, a hardware RNG is opened over serial and
// given an initial health check. Required alongside it:
//   - SERIAL_BAUD_RATE
//   - SERIAL_READ_TIMEOUT (milliseconds)
//
// Without SERIAL_DEVICE_NAME the source falls back to crypto/rand, which
// needs no health monitoring but is reported through the same Health so the
// rest of the service doesn't care which one it got.
//
// The returned reader is safe for concurrent use.
func NewEntropyFromEnv() (io.Reader, *Health, error) {
	name := os.Getenv("SERIAL_DEVICE_NAME")
	if name == "" {
		h := NewHealth()
		h.Set(true, "")
		return NewLockedReader(cryptorand.Reader), h, nil
	}

	baudStr := os.Getenv("SERIAL_BAUD_RATE")
	baud, err := strconv.Atoi(baudStr)
	if err != nil || baud <= 0 {
		return nil, nil, fmt.Errorf("invalid SERIAL_BAUD_RATE: %q", baudStr)
	}

	timeoutStr := os.Getenv("SERIAL_READ_TIMEOUT")
	timeoutMs, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutMs < 0 {
		return nil, nil, fmt.Errorf("invalid SERIAL_READ_TIMEOUT: %q", timeoutStr)
	}

	cfg := &serial.Config{
		Name:        name,
		Baud:        baud,
		Size:        8,
		ReadTimeout: time.Duration(timeoutMs) * time.Millisecond,
	}

	p, err := serial.OpenPort(cfg)
	if err != nil {
		return nil, nil, err
	}

	r := NewLockedReader(p)
	h := NewHealth()
	if err := CheckEntropy(r, h); err != nil {
		h.Set(false, err.Error())
		return nil, h, err
	}
	h.Set(true, "")

	return r, h, nil
}
