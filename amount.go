package money

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/govalues/decimal"
)

const (
	// Scale is the number of digits after the decimal point.
	Scale = 2
	// ScaleFactor is the number of minor units in one major unit (10^Scale).
	ScaleFactor int64 = 100
	// maxIntDigits is the longest integer part, sign included, accepted by [ParseAmount].
	maxIntDigits = 16
)

// Errors reported by [ParseAmount], [Amount.Quo] and the other fallible
// functions of the package. They are always wrapped with context, use
// [errors.Is] to check for them.
var (
	ErrMissingIntegerPart = errors.New("missing integer part")
	ErrMissingFraction    = errors.New("missing fractional part")
	ErrExcessPrecision    = errors.New("too many fractional digits")
	ErrOverflow           = errors.New("amount overflow")
	ErrInvalidDigits      = errors.New("invalid digits")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrSpecialValue       = errors.New("special value")
	errUnknownRounding    = errors.New("unknown rounding mode")
)

var (
	// Zero is an amount of 0.00.
	Zero = Amount{}
	// One is an amount of 1.00.
	One = Amount{value: ScaleFactor}
)

// Amount type represents a monetary amount with exactly two digits
// after the decimal point.
// Internally it is a signed 64-bit integer holding the amount multiplied
// by [ScaleFactor], so 5.25 is stored as 525.
// Its zero value corresponds to 0.00.
// Amount is immutable and is designed to be safe for concurrent use by
// multiple goroutines. Amounts are comparable with == and can be used as
// map keys.
type Amount struct {
	value int64 // amount * ScaleFactor
}

// RoundingMode selects how [Amount.Quo] resolves a quotient whose first
// digit past the second decimal place is 5.
type RoundingMode int

const (
	// HalfDown rounds ties toward zero.
	HalfDown RoundingMode = iota
	// HalfUp rounds ties away from zero.
	HalfUp
	// HalfEven rounds ties to the nearest amount with an even last digit
	// (banker's rounding).
	HalfEven
)

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	switch m {
	case HalfDown:
		return "HalfDown"
	case HalfUp:
		return "HalfUp"
	case HalfEven:
		return "HalfEven"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// NewAmountFromMinorUnits returns an amount equal to units / 100.
// The argument is used as the internal representation without any
// modification, so NewAmountFromMinorUnits(525) is 5.25.
// See also method [Amount.MinorUnits].
func NewAmountFromMinorUnits(units int64) Amount {
	return Amount{value: units}
}

// NewAmountFromInt64 returns an amount equal to the whole number of
// major units, so NewAmountFromInt64(5) is 5.00.
// See also method [Amount.Int64].
//
// The multiplication is not checked: if whole * 100 does not fit into
// an int64, the result wraps around like any int64 arithmetic.
func NewAmountFromInt64(whole int64) Amount {
	return Amount{value: whole * ScaleFactor}
}

// NewAmountFromFloat64 converts a float to an amount, truncating toward
// zero any digits beyond the second decimal place.
// Binary floating-point imprecision is carried over as is, for example
// 0.29 becomes 0.28 because 0.29 * 100 is 28.999999999999996.
// Use [ParseAmount] when the exact decimal value is known.
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the float multiplied by 100 does not fit into an int64.
func NewAmountFromFloat64(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("converting float %v: %w", f, ErrSpecialValue)
	}
	x := f * float64(ScaleFactor)
	if x >= math.MaxInt64 || x < math.MinInt64 {
		return Amount{}, fmt.Errorf("converting float %v: %w", f, ErrOverflow)
	}
	return Amount{value: int64(x)}, nil
}

// NewAmountFromDecimal converts a decimal to an amount.
// Trailing zeros beyond the second decimal place are ignored,
// so 1.2300 is accepted while 1.234 is not.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if:
//   - the decimal has more than 2 significant digits after the decimal point;
//   - the decimal multiplied by 100 does not fit into an int64.
func NewAmountFromDecimal(d decimal.Decimal) (Amount, error) {
	d = d.Trim(Scale)
	if d.Scale() > Scale {
		return Amount{}, fmt.Errorf("converting decimal %v: %w", d, ErrExcessPrecision)
	}
	d = d.Pad(Scale)
	if d.Scale() < Scale {
		return Amount{}, fmt.Errorf("converting decimal %v: %w", d, ErrOverflow)
	}
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return Amount{}, fmt.Errorf("converting decimal %v: %w", d, ErrOverflow)
		}
		return Amount{value: -int64(u)}, nil //nolint:gosec
	}
	if u > math.MaxInt64 {
		return Amount{}, fmt.Errorf("converting decimal %v: %w", d, ErrOverflow)
	}
	return Amount{value: int64(u)}, nil
}

// ParseAmount converts a string to an amount.
// The input string must be in one of the following formats:
//
//	123
//	-123
//	123.4
//	123.45
//	-0.45
//
// A single fractional digit means tenths, so "123.4" is 123.40.
// The integer part, including its sign, is limited to 16 characters.
//
// ParseAmount returns an error wrapping one of:
//   - [ErrMissingIntegerPart] if the string starts with the decimal point;
//   - [ErrOverflow] if the integer part is longer than 16 characters;
//   - [ErrMissingFraction] if nothing follows the decimal point;
//   - [ErrExcessPrecision] if more than 2 digits follow the decimal point;
//   - [ErrInvalidDigits] if any other character is found where a digit is expected.
func ParseAmount(s string) (Amount, error) {
	a, err := parseAmount(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return a, nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

func parseAmount(s string) (Amount, error) {
	// Decimal point
	pos := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			pos = i
			break
		}
	}
	if pos == 0 {
		return Amount{}, ErrMissingIntegerPart
	}
	if pos > maxIntDigits || (pos == -1 && len(s) > maxIntDigits) {
		return Amount{}, ErrOverflow
	}

	// Integer amount
	if pos == -1 {
		neg, whole, err := parseDigits(s, true)
		if err != nil {
			return Amount{}, err
		}
		if neg {
			whole = -whole
		}
		return Amount{value: whole * ScaleFactor}, nil
	}

	// Fraction
	frac := s[pos+1:]
	switch len(frac) {
	case 0:
		return Amount{}, ErrMissingFraction
	case 1, 2:
	default:
		return Amount{}, ErrExcessPrecision
	}
	_, cents, err := parseDigits(frac, false)
	if err != nil {
		return Amount{}, err
	}
	if len(frac) == 1 {
		cents *= 10
	}

	// Whole part, its sign applies to the fraction as well
	neg, whole, err := parseDigits(s[:pos], true)
	if err != nil {
		return Amount{}, err
	}
	v := whole*ScaleFactor + cents
	if neg {
		v = -v
	}
	return Amount{value: v}, nil
}

// parseDigits parses a non-empty run of ASCII digits, optionally preceded
// by a minus sign when signed is true.
// It returns the magnitude, the caller is responsible for the sign.
// The input is short enough for the magnitude to never overflow.
func parseDigits(s string, signed bool) (neg bool, n int64, err error) {
	if signed && len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) == 0 {
		return false, 0, ErrInvalidDigits
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false, 0, fmt.Errorf("%w: unexpected character %q", ErrInvalidDigits, c)
		}
		n = n*10 + int64(c-'0')
	}
	return neg, n, nil
}

// MinorUnits returns the amount in minor units (cents), which is the
// internal representation of the amount.
// See also constructor [NewAmountFromMinorUnits].
func (a Amount) MinorUnits() int64 {
	return a.value
}

// Int64 returns the integer part of the amount, discarding the cents.
// See also constructor [NewAmountFromInt64].
func (a Amount) Int64() int64 {
	return a.value / ScaleFactor
}

// Float64 returns the amount as a binary floating-point number.
// The result is the nearest float64 to a / 100.
// See also constructor [NewAmountFromFloat64].
func (a Amount) Float64() float64 {
	return float64(a.value) / float64(ScaleFactor)
}

// Float32 is like [Amount.Float64] but returns a float32.
func (a Amount) Float32() float32 {
	return float32(a.value) / float32(ScaleFactor)
}

// Decimal returns the decimal representation of the amount.
// The scale of the result is always 2.
// See also constructor [NewAmountFromDecimal].
func (a Amount) Decimal() decimal.Decimal {
	return decimal.MustNew(a.value, Scale)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	switch {
	case a.value < 0:
		return -1
	case a.value > 0:
		return 1
	default:
		return 0
	}
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.value > 0
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value == 0
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	if a.value >= 0 {
		return a
	}
	return Amount{value: -a.value}
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return Amount{value: -a.value}
}

// Add returns the sum of amounts a and b.
// The result wraps around if it does not fit into the internal int64.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value + b.value}
}

// Sub returns the difference between amounts a and b.
// The result wraps around if it does not fit into the internal int64.
func (a Amount) Sub(b Amount) Amount {
	return Amount{value: a.value - b.value}
}

// SubAbs returns the absolute difference between amounts a and b.
func (a Amount) SubAbs(b Amount) Amount {
	return a.Sub(b).Abs()
}

// Mul returns the product of amounts a and b.
// Digits beyond the second decimal place are truncated toward zero,
// not rounded: 1.99 * 0.50 is 0.99, although the exact product is 0.995.
// Use [Amount.Quo] when a rounding mode matters.
//
// The intermediate product of the minor units is not checked and wraps
// around if it does not fit into an int64.
func (a Amount) Mul(b Amount) Amount {
	return Amount{value: a.value * b.value / ScaleFactor}
}

// Quo returns the quotient of amounts a and b rounded to two decimal
// places using the given rounding mode.
// The quotient is first truncated to one extra digit and then rounded on
// that digit alone: below 5 it is dropped, above 5 the result moves away
// from zero, and exactly 5 is resolved by mode.
// Digits past the extra one are not looked at, so 0.01 / 1.96 (0.0051...)
// is 0.00 with [HalfDown] and [HalfEven].
// See also methods [Amount.Rat] and [Amount.Split].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the rounded quotient does not fit into an int64;
//   - the rounding mode is unknown.
func (a Amount) Quo(b Amount, mode RoundingMode) (Amount, error) {
	c, err := a.quo(b, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) quo(b Amount, mode RoundingMode) (Amount, error) {
	if mode < HalfDown || mode > HalfEven {
		return Amount{}, fmt.Errorf("%w %v", errUnknownRounding, mode)
	}
	if b.value == 0 {
		return Amount{}, ErrDivisionByZero
	}
	const guard = 10

	// Magnitude of the quotient with a guard digit, in 128 bits
	y := abs(b.value)
	hi, lo := bits.Mul64(abs(a.value), uint64(ScaleFactor*guard))
	ehi, r := bits.Div64(0, hi, y)
	elo, _ := bits.Div64(r, lo, y)
	ehi, r = bits.Div64(0, ehi, guard)
	q, last := bits.Div64(r, elo, guard)
	if ehi != 0 || q > 1<<63 {
		return Amount{}, ErrOverflow
	}

	// Rounding away from zero
	switch {
	case last > 5:
		q++
	case last == 5:
		switch mode {
		case HalfUp:
			q++
		case HalfEven:
			if q%2 != 0 {
				q++
			}
		}
	}

	if (a.value < 0) != (b.value < 0) {
		if q > 1<<63 {
			return Amount{}, ErrOverflow
		}
		return Amount{value: int64(-q)}, nil //nolint:gosec
	}
	if q > math.MaxInt64 {
		return Amount{}, ErrOverflow
	}
	return Amount{value: int64(q)}, nil
}

// abs returns the magnitude of v, which is exact for math.MinInt64 too.
func abs(v int64) uint64 {
	u := uint64(v) //nolint:gosec
	if v < 0 {
		u = -u
	}
	return u
}

// Rat returns the ratio between amounts a and b as a decimal.
// It is useful for calculating percentages, for example the share of
// a partial payment in the total.
// See also method [Amount.Quo].
//
// Rat returns an error if the divisor is 0.
func (a Amount) Rat(b Amount) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrDivisionByZero)
	}
	d, err := a.Decimal().Quo(b.Decimal())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	return d, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remaining cents are distributed among the first parts of the slice.
// See also method [Amount.Quo].
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: number of parts must be positive", a, parts)
	}
	n := int64(parts)
	quo := a.value / n
	rem := a.value - quo*n
	ulp := int64(1)
	if rem < 0 {
		ulp = -1
	}
	res := make([]Amount, parts)
	for i := range res {
		res[i] = Amount{value: quo}
		// Remainder distribution
		if rem != 0 {
			res[i].value += ulp
			rem -= ulp
		}
	}
	return res, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}

// Equal returns true if amounts are equal.
// It is the same as a == b.
func (a Amount) Equal(b Amount) bool {
	return a.value == b.value
}

// GreaterThan returns true if a > b.
func (a Amount) GreaterThan(b Amount) bool {
	return a.value > b.value
}

// GreaterThanOrEqual returns true if a >= b.
func (a Amount) GreaterThanOrEqual(b Amount) bool {
	return a.value >= b.value
}

// LessThan returns true if a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.value < b.value
}

// LessThanOrEqual returns true if a <= b.
func (a Amount) LessThanOrEqual(b Amount) bool {
	return a.value <= b.value
}

// Min returns the smaller amount.
func (a Amount) Min(b Amount) Amount {
	if a.value <= b.value {
		return a
	}
	return b
}

// Max returns the larger amount.
func (a Amount) Max(b Amount) Amount {
	if a.value >= b.value {
		return a
	}
	return b
}

// String implements the [fmt.Stringer] interface and returns the
// canonical representation of an amount: an optional minus sign,
// the integer digits, a decimal point and exactly two fractional digits.
//
//	0.50
//	-0.50
//	1234.00
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return string(a.appendString(make([]byte, 0, 24)))
}

// appendString appends the canonical representation of the amount.
func (a Amount) appendString(text []byte) []byte {
	var buf [24]byte
	pos := len(buf) - 1

	// Magnitude, valid for math.MinInt64 as well
	coef := uint64(a.value)
	if a.value < 0 {
		coef = -coef
	}

	// Fractional digits
	for i := 0; i < Scale; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Decimal point
	buf[pos] = '.'
	pos--

	// Integer digits
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if coef == 0 {
			break
		}
	}

	// Sign
	if a.value < 0 {
		buf[pos] = '-'
		pos--
	}

	return append(text, buf[pos+1:]...)
}
