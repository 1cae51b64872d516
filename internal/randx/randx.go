// Package randx provides bounded random draws on top of an injectable entropy
// source. All helpers read from the given io.Reader only; with
// crypto/rand.Reader they are safe for concurrent use.
package randx

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Alphabet is the fixed alphanumeric alphabet used for random strings.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Int64 returns a uniform random int64 in [min, max]. It uses rejection
// sampling on the raw 64-bit draw so the result never exceeds max.
func Int64(r io.Reader, min, max int64) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("randx: min %d greater than max %d", min, max)
	}
	span := uint64(max-min) + 1 // 0 means the full 2^64 range
	if span == 0 {
		v, err := read64(r)
		return int64(v), err
	}
	// Largest multiple of span that fits in 64 bits; draws at or above it
	// are discarded to keep the modulo unbiased.
	limit := ^uint64(0) - ^uint64(0)%span
	for {
		v, err := read64(r)
		if err != nil {
			return 0, err
		}
		if v < limit {
			return min + int64(v%span), nil
		}
	}
}

// String returns a random string of length n over Alphabet. n <= 0 yields "".
func String(r io.Reader, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	b := make([]byte, n)
	for i := range b {
		idx, err := Int64(r, 0, int64(len(Alphabet)-1))
		if err != nil {
			return "", err
		}
		b[i] = Alphabet[idx]
	}
	return string(b), nil
}

// Bool reads one byte and reports its lowest bit.
func Bool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, fmt.Errorf("randx: read entropy: %w", err)
	}
	return b[0]&1 == 1, nil
}

func read64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("randx: read entropy: %w", err)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
