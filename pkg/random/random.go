// Package random draws random values, picks and identifiers.
//
// Numeric helpers and selections use math/rand/v2, which is safe for concurrent
// use. RandomString draws from crypto/rand so it can back tokens and passwords.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"slices"
	"strings"
	apperrors "utilkit/pkg/errors"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

const (
	Lowercase    = "abcdefghijklmnopqrstuvwxyz"
	Uppercase    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits       = "0123456789"
	Alphanumeric = Lowercase + Uppercase + Digits
	Hex          = "0123456789abcdef"
)

// RandomItem returns a uniformly chosen element. ok is false for an empty slice.
func RandomItem[T any](items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[mrand.IntN(len(items))], true
}

// RandomItems returns up to n distinct positions of items in random order.
func RandomItems[T any](items []T, n int) []T {
	n = min(max(n, 0), len(items))
	return Shuffle(items)[:n]
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	mrand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// RandomInt returns an integer in [lo, hi].
func RandomInt(lo, hi int) (int, error) {
	if lo > hi {
		return 0, apperrors.RangeError("min", fmt.Sprintf("must not exceed max, got %d > %d", lo, hi))
	}
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		// [MinInt, MaxInt] covers every value.
		return int(mrand.Uint64()), nil
	}
	return lo + int(mrand.Uint64N(span)), nil
}

// RandomFloat returns a float in [lo, hi).
func RandomFloat(lo, hi float64) (float64, error) {
	if lo > hi {
		return 0, apperrors.RangeError("min", fmt.Sprintf("must not exceed max, got %v > %v", lo, hi))
	}
	return lo + mrand.Float64()*(hi-lo), nil
}

func RandomBool() bool {
	return mrand.IntN(2) == 1
}

// RandomString returns length runes drawn uniformly from charset, or from
// Alphanumeric when charset is empty.
func RandomString(length int, charset string) (string, error) {
	if length < 0 {
		return "", apperrors.RangeError("length", fmt.Sprintf("must not be negative, got %d", length))
	}
	if charset == "" {
		charset = Alphanumeric
	}

	runes := []rune(charset)
	limit := big.NewInt(int64(len(runes)))
	var b strings.Builder
	b.Grow(length)
	for range length {
		i, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", apperrors.Internal("failed to read random bytes", err)
		}
		b.WriteRune(runes[i.Int64()])
	}
	return b.String(), nil
}

// RandomHexColor returns a color such as "#1a2b3c".
func RandomHexColor() string {
	return fmt.Sprintf("#%06x", mrand.IntN(1<<24))
}

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}

// SortableID returns a 20 character, URL-safe identifier that sorts by creation
// time.
func SortableID() string {
	return xid.New().String()
}
