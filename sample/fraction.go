// SPDX-License-Identifier: MIT

package sample

import (
	"crypto/md5"
	"math"
	"math/big"
	"strings"

	"github.com/katalvlaran/prepkit/table"
)

// KeySeparator joins the canonical texts of a composite key. It keeps
// ("a","1") and ("a1","") apart: "a|1" vs "a1|".
const KeySeparator = "|"

// digestBits is the MD5 digest width.
const digestBits = 128

// KeyText renders a key tuple to the string that is hashed: each value's
// canonical Text (missing → ""), joined with KeySeparator.
func KeyText(values []table.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Text()
	}

	return strings.Join(parts, KeySeparator)
}

// Fraction maps a key tuple onto [0, 1): the MD5 digest of KeyText, read as
// a big-endian 128-bit unsigned integer, over 2^128.
//
// The integer is rounded to the nearest float64 before scaling. Digests
// within 2^74 of the top would round to exactly 1; those are pinned to the
// largest float64 below 1 so the range stays half-open.
func Fraction(values []table.Value) float64 {
	sum := md5.Sum([]byte(KeyText(values)))
	n := new(big.Int).SetBytes(sum[:])
	f, _ := new(big.Float).SetInt(n).Float64()
	f = math.Ldexp(f, -digestBits)
	if f >= 1 {
		return math.Nextafter(1, 0)
	}

	return f
}

// Label returns Train when fraction < trainingFrac, else Test.
func Label(fraction, trainingFrac float64) string {
	if fraction < trainingFrac {
		return Train
	}

	return Test
}
