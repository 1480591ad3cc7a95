package opponent

import (
	"encoding/binary"
	"math"
	"math/bits"
	"strconv"
)

// Random yields values in [0,1]. 1.0 itself may occur.
type Random interface {
	Random() float64
}

// RandomFunc adapts a plain function to Random.
type RandomFunc func() float64

func (f RandomFunc) Random() float64 { return f() }

const warmupCycles = 256

// Xorshift128Plus is the xorshift128+ generator.
type Xorshift128Plus struct {
	s0, s1 uint64
}

// NewXorshift seeds the generator and discards its first outputs.
func NewXorshift(s0, s1 uint64) *Xorshift128Plus {
	if s0 == 0 && s1 == 0 {
		// An all-zero state never leaves zero.
		s0 = 0x9E3779B97F4A7C15
	}
	x := &Xorshift128Plus{s0: s0, s1: s1}
	for i := 0; i < warmupCycles; i++ {
		x.Uint64()
	}
	return x
}

// FromSeed packs four words big-endian, two per half of the state.
func FromSeed(seed [4]uint32) *Xorshift128Plus {
	var b [16]byte
	for i, w := range seed {
		binary.BigEndian.PutUint32(b[i*4:], w)
	}
	return NewXorshift(binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:]))
}

// FromRandom draws a seed from another source.
func FromRandom(r Random) *Xorshift128Plus {
	var seed [4]uint32
	for i := range seed {
		seed[i] = uint32(r.Random() * math.MaxUint32)
	}
	return FromSeed(seed)
}

// SeedFromDigits expands a short decimal code into a full seed. Non-digits are ignored.
func SeedFromDigits(digits string) [4]uint32 {
	var n uint32
	for _, r := range digits {
		if d, err := strconv.Atoi(string(r)); err == nil {
			n = n*10 + uint32(d)
		}
	}
	return [4]uint32{n, ^n, n * 2654435761, bits.RotateLeft32(n, 16)}
}

func (x *Xorshift128Plus) Uint64() uint64 {
	t, s := x.s0, x.s1
	x.s0 = s
	t ^= t << 23
	t ^= t >> 17
	t ^= s ^ (s >> 26)
	x.s1 = t
	return t + s
}

// Random returns the high 32 bits of the next output over MaxUint32.
func (x *Xorshift128Plus) Random() float64 {
	return float64(uint32(x.Uint64()>>32)) / math.MaxUint32
}
