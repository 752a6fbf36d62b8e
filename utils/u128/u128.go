// Package u128 implements a minimal unsigned 128-bit integer, built the way
// the wider lattice-arithmetic corpus builds its own fixed-width numeric
// primitives (double-width products via math/bits, decimal rendering via
// math/big only at the edges). It supports exactly the operations a PRINCE
// keyspace needs: addition, subtraction, comparison, multiplication by a
// uint64, and division/modulo by a uint64.
package u128

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer, Hi*2^64 + Lo.
type Uint128 struct {
	Hi, Lo uint64
}

// Zero is the additive identity.
var Zero = Uint128{}

// FromUint64 widens v into a Uint128.
func FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// FromBig converts a non-negative big.Int smaller than 2^128 into a Uint128.
// It returns an error if b is negative or does not fit in 128 bits.
func FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 {
		return Zero, fmt.Errorf("u128: FromBig: value %s is negative", b.String())
	}
	if b.BitLen() > 128 {
		return Zero, fmt.Errorf("u128: FromBig: value %s overflows 128 bits", b.String())
	}
	var buf [16]byte
	b.FillBytes(buf[:])
	hi := uint64(0)
	lo := uint64(0)
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(buf[i])
	}
	for i := 8; i < 16; i++ {
		lo = lo<<8 | uint64(buf[i])
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// Parse parses a base-10 decimal string into a Uint128.
func Parse(s string) (Uint128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, fmt.Errorf("u128: Parse: %q is not a decimal integer", s)
	}
	return FromBig(b)
}

// Big returns u as an arbitrary-precision integer, for formatting and for
// collaborators (utils/diag) that need bigfloat/big.Int-level math.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(u.Lo))
	return v
}

// String renders u in full decimal precision. Unlike printing a 128-bit
// count as a float64, this never loses precision beyond 2^53.
func (u Uint128) String() string {
	return u.Big().String()
}

// IsZero reports whether u is the zero value.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0 or 1 as u is less than, equal to, or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Add returns u + v. Overflow beyond 128 bits is not detected, matching the
// original's u128 arithmetic: the caller is assumed to size its keyspace
// within 128 bits.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns u - v. The caller must ensure u >= v; underflow wraps silently.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// MulUint64 returns u * v. As with Add, the product is assumed to fit in
// 128 bits; this is the keyspace multiplication at the core of §4.3.
func (u Uint128) MulUint64(v uint64) Uint128 {
	hi, lo := bits.Mul64(u.Lo, v)
	hi += u.Hi * v
	return Uint128{Hi: hi, Lo: lo}
}

// DivUint64 returns the quotient and remainder of u / v. It panics if v is
// zero, mirroring the precondition of math/bits.Div64.
func (u Uint128) DivUint64(v uint64) (q Uint128, r uint64) {
	if v == 0 {
		panic("u128: DivUint64: division by zero")
	}
	if u.Hi == 0 {
		lo, rem := bits.Div64(0, u.Lo, v)
		return Uint128{Lo: lo}, rem
	}
	qHi, rHi := bits.Div64(0, u.Hi, v)
	qLo, rLo := bits.Div64(rHi, u.Lo, v)
	return Uint128{Hi: qHi, Lo: qLo}, rLo
}

// ModUint64 returns u mod v.
func (u Uint128) ModUint64(v uint64) uint64 {
	_, r := u.DivUint64(v)
	return r
}

// Min returns the smaller of a and b.
func Min(a, b Uint128) Uint128 {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
