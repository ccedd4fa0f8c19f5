package core

import (
	"crypto/rand"
	"time"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 9
	// largest multiple of len(idAlphabet) below 256; bytes above it are
	// rejected so every symbol is equally likely.
	idCutoff = 252
)

// TimestampLayout is RFC 3339 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NewID returns a 9 character lowercase base36 identifier. Collisions are
// not checked.
func NewID() string {
	out := make([]byte, 0, idLength)
	var buf [16]byte
	for len(out) < idLength {
		if _, err := rand.Read(buf[:]); err != nil {
			panic(err)
		}
		for _, b := range buf {
			if b >= idCutoff {
				continue
			}
			out = append(out, idAlphabet[int(b)%len(idAlphabet)])
			if len(out) == idLength {
				break
			}
		}
	}
	return string(out)
}

// Now returns the current UTC time formatted with TimestampLayout.
func Now() string { return FormatTime(time.Now()) }

// FormatTime renders t in UTC using TimestampLayout.
func FormatTime(t time.Time) string { return t.UTC().Format(TimestampLayout) }
