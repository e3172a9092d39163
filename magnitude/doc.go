// Package magnitude provides arithmetic on unsigned decimal digit strings.
//
// A magnitude is a non-empty string of the ASCII digits '0' through '9', most
// significant digit first, with no leading zero unless the whole string is
// exactly "0". For example:
//
//	"0", "7", "1000", "340282366920938463463374607431768211456"
//
// are magnitudes while "", "007" and "-1" are not. Strip converts any digit
// string into a magnitude.
//
// # Operations
//
// All operations take and return magnitudes. None of them inspect or produce
// a sign; signed arithmetic is built on top of this package by the integer
// package.
//
//	| Operation | Method                         | Cost              |
//	|-----------|--------------------------------|-------------------|
//	| Add       | carry addition                 | O(max(|a|, |b|))  |
//	| Sub       | borrow subtraction, a >= b     | O(|a|)            |
//	| Mul       | schoolbook long multiplication | O(|a| * |b|)      |
//	| QuoRem    | long division by subtraction   | O(|a| * |b|)      |
//
// Division computes each quotient digit by repeatedly subtracting the divisor
// from a running prefix of the dividend and counting the subtractions (at
// most nine per digit). The digits produced are exactly those of the
// procedure described on QuoRem.
//
// Inputs are not validated. Passing a string that is not a magnitude gives an
// unspecified result; callers are expected to validate with Valid and
// normalize with Strip at their boundaries.
package magnitude
