// Package unit implements the length grammar used by style properties.
//
// A length is written as one of
//
//	auto      - computed by the layout engine
//	<n>%      - percentage of a reference dimension
//	<n>px     - device independent pixels
//
// where <n> is a decimal floating point number in strconv.ParseFloat syntax,
// without digit separators ("1_0px") and hexadecimal forms ("0x1p4px"), which
// are rejected. Results which are NaN or infinite are rejected, values out of
// float64 range ("1e400px") are invalid numbers, negative values are kept as
// is.
//
// Encoding truncates the number toward zero: "12.7px" decodes to Point(12.7)
// and encodes back as "12px". Undefined has no text form of its own and
// encodes as "auto", so it never survives a round trip.
//
// # Usage
//
//	l, err := unit.Decode(raw) // nil, nil when raw is absent or not a string
//	text := unit.Encode(l)     // null when l is nil
package unit
