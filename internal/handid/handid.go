// Package handid generates sortable identifiers for played hands: a UUIDv7
// rendered as a 26-character Crockford base32 string.
package handid

import (
	"encoding/binary"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID.
const Length = 26

// Generator produces hand IDs. The random tail comes from the injected
// source, so seeded runs differ only in the timestamp prefix.
type Generator struct {
	reader io.Reader
}

// NewGenerator creates a generator reading random bits from rng. A nil rng
// falls back to crypto randomness.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		return &Generator{}
	}
	return &Generator{reader: &randReader{rng: rng}}
}

// Generate creates a new hand ID using crypto randomness
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new hand ID.
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.reader != nil {
		id, err = uuid.NewV7FromReader(g.reader)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate hand id: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as 26 base32 characters. The 128 bits are left
// padded with two zero bits, so the first character is always 0-7.
func Encode(id uuid.UUID) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])

	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

type randReader struct {
	rng *rand.Rand
}

func (r *randReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); {
		v := r.rng.Uint64()
		for j := 0; j < 8 && i < len(p); j++ {
			p[i] = byte(v)
			v >>= 8
			i++
		}
	}
	return len(p), nil
}
