// SPDX-License-Identifier: MIT

package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags the dynamic type held by a Value.
type Kind uint8

const (
	// KindNull is the missing value.
	KindNull Kind = iota
	// KindString holds a UTF-8 string.
	KindString
	// KindInt holds an int64.
	KindInt
	// KindFloat holds a float64 (NaN counts as missing).
	KindFloat
	// KindBool holds a bool.
	KindBool
)

var kindNames = [...]string{"null", "string", "int", "float", "bool"}

// String returns a lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an immutable tagged scalar cell.
// The zero Value is Null.
type Value struct {
	kind Kind
	s    string
	n    int64
	f    float64
	b    bool
}

// Null returns the missing value.
func Null() Value { return Value{} }

// String wraps s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int wraps n.
func Int(n int64) Value { return Value{kind: KindInt, n: n} }

// Float wraps f. NaN is stored as a Float but reports IsMissing.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the stored kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is Null or a NaN float. Both collapse to the
// same canonical key text.
func (v Value) IsMissing() bool {
	return v.kind == KindNull || (v.kind == KindFloat && math.IsNaN(v.f))
}

// Float64 returns the numeric view of v. Ints and bools convert; missing
// values yield (NaN, true); strings yield (0, false).
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindNull:
		return math.NaN(), true
	case KindInt:
		return float64(v.n), true
	case KindFloat:
		return v.f, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Text returns the canonical textual form of v:
//   - missing (Null, NaN) → ""
//   - string → verbatim
//   - int → base-10
//   - bool → "True" / "False"
//   - float → shortest round-trip digits; integral values keep a ".0"
//     suffix; exponent form ("1e-05", "1.5e+16") when the decimal exponent
//     is < -4 or >= 16; infinities are "inf" / "-inf".
//
// The encoding is a stable contract: key hashing depends on it byte for byte.
func (v Value) Text() string {
	if v.IsMissing() {
		return ""
	}
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.n, 10)
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	default:
		return formatFloat(v.f)
	}
}

// String implements fmt.Stringer; it is Text with "<null>" for missing.
func (v Value) String() string {
	if v.IsMissing() {
		return "<null>"
	}

	return v.Text()
}

// Equal reports whether a and b hold the same kind and payload.
// Two missing values are equal regardless of representation.
func (v Value) Equal(o Value) bool {
	if v.IsMissing() || o.IsMissing() {
		return v.IsMissing() && o.IsMissing()
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.n == o.n
	case KindFloat:
		return v.f == o.f
	default:
		return v.b == o.b
	}
}

// formatFloat renders f in the canonical float text form documented on Text.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	// Shortest exponent form first: it tells us the decimal exponent.
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return e
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// naTokens are CSV cell spellings read as missing.
var naTokens = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "NaN": {}, "nan": {}, "null": {}, "NULL": {}, "None": {},
}

// Parse infers a Value from text: NA tokens → Null, then int, float,
// bool ("true"/"false" in any case), falling back to String.
func Parse(s string) Value {
	if _, ok := naTokens[s]; ok {
		return Null()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	switch strings.ToLower(s) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	return String(s)
}
