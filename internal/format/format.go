// Package format masks the regulated RSVP fields while they are typed.
//
// Both formatters take the complete current value of an input, drop every
// non-digit and re-insert the grouping punctuation at fixed positions. A
// separator is only written once a digit follows it, so a partially typed
// value never ends in punctuation.
package format

import "strings"

const (
	// PhoneDigits is the number of digits kept for a phone number.
	PhoneDigits = 11
	// PhoneLength is the length of a complete formatted phone: (DD) DDDDD-DDDD.
	PhoneLength = 15

	// NationalIDDigits is the number of digits kept for a national ID (CPF).
	NationalIDDigits = 11
	// NationalIDLength is the length of a complete formatted national ID: DDD.DDD.DDD-DD.
	NationalIDLength = 14
)

// Digits returns the ASCII digits of s in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Phone formats raw as a Brazilian mobile number, (11) 98765-4321.
func Phone(raw string) string {
	d := truncate(Digits(raw), PhoneDigits)

	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// NationalID formats raw as a CPF, 123.456.789-01.
func NationalID(raw string) string {
	d := truncate(Digits(raw), NationalIDDigits)

	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
