package decimal

import (
	"fmt"
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// Unlike coefficients of fixed-size decimals, it is signed.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [40]*bint {
	var p [40]*bint
	p[0] = mustParseBint("1")
	ten := big.NewInt(10)
	for i := 1; i < len(p); i++ {
		z := new(big.Int).Mul((*big.Int)(p[i-1]), ten)
		p[i] = (*bint)(z)
	}
	return p
}()

// mustParseBint converts a string to *big.Int, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	return (*bint)(z)
}

// newBint converts a string of decimal digits to *big.Int.
func newBint(digits string, neg bool) (*bint, bool) {
	z, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, false
	}
	if neg {
		z.Neg(z)
	}
	return (*bint)(z), true
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	(*big.Int)(z).Exp(big.NewInt(10), big.NewInt(int64(power)), nil)
}

// quoRem calculates z = x / y, r = x - y * z, truncating towards zero.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// rshHalfUp (Right Shift) calculates z = round(x / 10^shift) and
// rounds ties away from zero.
func (z *bint) rshHalfUp(x *bint, shift int) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	neg := x.sign() < 0
	m := getBint()
	defer putBint(m)
	m.abs(x)
	r := getBint()
	defer putBint(r)
	z.quoRem(m, y, r)
	(*big.Int)(r).Lsh((*big.Int)(r), 1) // r = r * 2
	if r.cmp(y) >= 0 {
		z.add(z, bpow10[0]) // z = z + 1
	}
	if neg {
		z.neg(z)
	}
}

// ntz returns the number of trailing decimal zeros in z, at most limit.
func (z *bint) ntz(limit int) int {
	if z.sign() == 0 {
		return limit
	}
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	q.setBint(z)
	n := 0
	for n < limit {
		q.quoRem(q, bpow10[1], r)
		if r.sign() != 0 {
			break
		}
		n++
	}
	return n
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
