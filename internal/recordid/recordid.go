// Package recordid generates time-sortable identifiers for saved game
// records. IDs are UUIDv7 values encoded as 26 characters of Crockford
// base32, so lexicographic order follows creation order.
package recordid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies randomness, injectable for deterministic tests.
type RandSource interface {
	Intn(n int) int
}

// Generator produces record IDs with configurable randomness.
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a generator. A nil RandSource uses crypto/rand.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// New creates a record ID using the default generator.
func New() string {
	return NewGenerator(nil).New()
}

// New creates a record ID from the current time and the generator's
// randomness source.
func (g *Generator) New() string {
	return encodeBase32(g.uuidv7())
}

func (g *Generator) uuidv7() [16]byte {
	var u [16]byte

	// 48-bit millisecond timestamp, then random bits with the version and
	// variant fields set per RFC 9562.
	now := time.Now().UnixMilli()
	u[0] = byte(now >> 40)
	u[1] = byte(now >> 32)
	u[2] = byte(now >> 24)
	u[3] = byte(now >> 16)
	u[4] = byte(now >> 8)
	u[5] = byte(now)

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			u[i] = byte(g.randSource.Intn(256))
		}
	} else {
		if _, err := rand.Read(u[6:]); err != nil {
			panic("recordid: failed to read random bytes: " + err.Error())
		}
	}

	u[6] = (u[6] & 0x0f) | 0x70
	u[8] = (u[8] & 0x3f) | 0x80
	return u
}

// encodeBase32 packs 128 bits into 26 base32 characters, MSB first, with the
// final character right-padded by two zero bits.
func encodeBase32(u [16]byte) string {
	var out [26]byte
	var acc uint32
	bits := 0
	n := 0
	for _, b := range u {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			out[n] = alphabet[(acc>>(bits-5))&0x1f]
			bits -= 5
			n++
		}
	}
	out[n] = alphabet[(acc<<(5-bits))&0x1f]
	return string(out[:])
}

// Validate checks that id is a well-formed record ID.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("record ID must be exactly 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("record ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
