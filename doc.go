/*
Package money implements fixed-point monetary amounts with two digits after
the decimal point.
Amounts are stored as a signed 64-bit count of minor units (cents), so all
arithmetic is exact integer arithmetic and never suffers from binary
floating-point errors.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Exact parsing of decimal strings, with precise errors for malformed input
  - Arithmetic and comparison operations between monetary values
  - Division with half-down, half-up and half-even rounding
  - Conversion to and from [decimal.Decimal], floats and integers
  - Text, JSON, BSON and SQL encodings using the canonical representation

# Representation

An [Amount] wraps an int64 equal to the amount multiplied by [ScaleFactor].
For example, 5.25 is stored as 525 and -0.50 as -50.
The canonical string representation always has an optional minus sign,
at least one integer digit, a decimal point and exactly two fractional digits.

# Supported Ranges

The internal int64 limits amounts to the range
-92233720368547758.08 to 92233720368547758.07.
[ParseAmount] is more conservative and accepts at most 16 characters in the
integer part, so that parsed values never come close to that limit.

# Operations

The package provides Add, Sub, Mul and Quo, along with Abs, Neg, Split
and Rat.
Mul truncates digits beyond the second decimal place toward zero, while Quo
rounds using the [RoundingMode] chosen by the caller.

Add, Sub, Mul and [NewAmountFromInt64] do not check for int64 overflow and
wrap around like the underlying integer arithmetic.

# Errors

Parsing and division report failures as wrapped errors.
The sentinel errors [ErrMissingIntegerPart], [ErrMissingFraction],
[ErrExcessPrecision], [ErrOverflow], [ErrInvalidDigits], [ErrDivisionByZero]
and [ErrSpecialValue] can be matched with [errors.Is].
*/
package money
