package tiling

import (
	errs "github.com/matzehuels/polytile/pkg/errors"
)

// Encoding maps tiling-string digits to orientation indices:
//
//	orientation = (Shift + digit) mod Modulus
//
// Modulus is the number of orientations one symbol can address. It is part
// of the string format and is never derived from the family size.
type Encoding struct {
	Modulus int
	Shift   int
}

// DefaultEncoding is the Korn–Pak convention for T-tetromino strings:
// digits 1–4 select orientations 0–3.
var DefaultEncoding = Encoding{Modulus: 4, Shift: 3}

// Validate checks that every index the encoding can produce exists in a
// family of familySize orientations.
func (e Encoding) Validate(familySize int) error {
	if e.Modulus < 1 {
		return errs.New(errs.ErrCodeInvalidEncoding, "modulus must be at least 1, got %d", e.Modulus)
	}
	if e.Modulus > familySize {
		return errs.New(errs.ErrCodeInvalidEncoding,
			"modulus %d exceeds the %d orientations of the shape", e.Modulus, familySize)
	}
	return nil
}

// Orientation returns the orientation index selected by symbol.
func (e Encoding) Orientation(symbol byte) (int, error) {
	if symbol < '0' || symbol > '9' {
		return 0, errs.New(errs.ErrCodeInvalidSymbol, "symbol %q is not a digit", symbol)
	}
	d := int(symbol - '0')
	return ((e.Shift+d)%e.Modulus + e.Modulus) % e.Modulus, nil
}

// Symbol returns the smallest digit that selects orientation, or false if
// no digit does.
func (e Encoding) Symbol(orientation int) (byte, bool) {
	for c := byte('0'); c <= '9'; c++ {
		if o, _ := e.Orientation(c); o == orientation {
			return c, true
		}
	}
	return 0, false
}
