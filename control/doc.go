// Package control provides the BSV block framing used to embed values in a
// byte stream.
//
// BSV control blocks use a prefix coding scheme in their first byte to
// indicate the type of the block (which then further indicates how many bytes
// the block contains). Data is packed directly into the control byte whenever
// it fits, so small values cost a single byte.
//
// # Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                          |
//	|---------------|---------------||----------------|------------------------------------------|
//	| 1 |                           || Data           | 2^7 = 128 values                         |
//	| 0 . 1 |                       || Data Size      | up to 2^6 = 64 bytes                     |
//	| 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values                    |
//	| 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values               |
//	| 0 . 0 . 0 . 0 . 1 |           || Data Size Size | up to 2^3 = 8 bytes of size              |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)         |
//	|---------------|---------------||----------------|------------------------------------------|
//
// Sizes are indexed starting at 1 to maximize their effective range, so a
// Data Size block with size bits 000000 carries one byte of data.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data
//  2. Data
//
// Data + 1 and Data + 2 blocks keep the most significant bits of the data in
// the control byte and are followed by one or two bytes respectively.
//
// Data Size Size blocks have three parts:
//
//  1. Number of bytes for the data size
//  2. Number of bytes that contain data (big-endian)
//  3. Data
//
// Null blocks indicate that the field is set to the null value.
//
// The encoder always picks the smallest block that holds the data exactly, so
// decoding returns the same bytes that were encoded.
package control
