package worlddata

import "strings"

// hexDigitValue parses a single base-36 digit (0-9, A-Z) as used by Tech
// Level, returning -1 if c is not a valid digit.
func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// ParseUWP parses the eight-character (plus hyphen) UWP token, e.g.
// "A788899-C", validating every character against its published range.
// Malformed tokens are reported via a *ParseError so the caller can attach
// sector/hex context.
func ParseUWP(token string) (UWP, error) {
	clean := strings.ReplaceAll(token, "-", "")
	if len(clean) != 8 {
		return UWP{}, &ParseError{Token: token, Reason: "UWP must have exactly 8 significant characters"}
	}

	var u UWP

	starport := clean[0]
	if !strings.ContainsRune(starportGrades, rune(starport)) {
		return UWP{}, &ParseError{Token: token, Reason: "invalid starport grade"}
	}
	u.Starport = starport

	fields := []struct {
		name string
		dst  *int
		max  int
	}{
		{"size", &u.Size, 10},
		{"atmosphere", &u.Atmosphere, 15},
		{"hydrographics", &u.Hydrographics, 10},
		{"population", &u.Population, 15},
		{"government", &u.Government, 15},
		{"law", &u.Law, 15},
		{"tech level", &u.TechLevel, 35},
	}

	for i, f := range fields {
		v := hexDigitValue(clean[i+1])
		if v < 0 || v > f.max {
			return UWP{}, &ParseError{Token: token, Reason: "invalid " + f.name + " digit"}
		}
		*f.dst = v
	}

	return u, nil
}
