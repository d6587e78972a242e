/*
Package decimal implements immutable decimal numbers for numeric input fields.
Values keep every digit exactly as typed by the user, so that sums such as
0.1 + 0.2 are exactly 0.3 and rounding is performed on decimal digits,
never on binary floating-point numbers.

# Representation

A [Value] is conceptually a pair of:

  - Coefficient: a signed integer representing the digits of the value
    without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a value with a coefficient of 12345 and a scale of 2 represents
    123.45.

In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales, and [Value.String] reproduces the scale they were written with.
Zero is never negative.

# Backends

Two interchangeable implementations of [Value] exist:

  - [Big]: the coefficient is a [big.Int], so the range and the precision
    are unlimited.
  - [Float]: the value is a float64 that remembers its scale.
    After each operation the float is rounded back to its scale on decimal
    digits, so results are identical to [Big] as long as the value has no
    more than 15 significant digits.
    Larger or smaller magnitudes may silently lose trailing digits.

[Default] selects the backend once per process; callers should keep the
selected [Backend] and never depend on the concrete type of a value.
Operands created by different backends can be mixed, the argument is
converted to the backend of the receiver.

# Parsing

[Normalize] and [Classify] operate on raw strings typed by a user.
[Classify] tells apart an empty string, a prefix of a number that is still
being typed (such as "-" or "1."), a complete number and garbage.
[Backend.Parse] reports the same distinction with [ErrEmpty], [ErrIncomplete]
and [ErrMalformed].

# Special values

[NaN] is produced by converting a NaN or an infinite float.
It propagates through [Value.Add] and compares as [Unordered] with everything,
including itself, so it is never less than, greater than or equal to a value.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package decimal
