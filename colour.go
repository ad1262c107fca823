package blurplehook

import (
	"fmt"
	"regexp"
	"strconv"
)

// maxColour is the largest value representable in the 24-bit colour space.
const maxColour = 0xFFFFFF

var hexColourPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Colour is a colour specification for an embed. It is normalised to a single
// 24-bit integer before hitting the wire. Construct one with Hex, RGB or
// Decimal; malformed or out-of-range specifications fail with a
// *ValidationError when the colour is applied.
type Colour interface {
	normalise() (int, error)
}

// Color is the US spelling of Colour.
type Color = Colour

type hexColour string

// Hex specifies a colour as a "#RRGGBB" string, e.g. "#5865F2".
func Hex(value string) Colour {
	return hexColour(value)
}

func (c hexColour) normalise() (int, error) {
	if !hexColourPattern.MatchString(string(c)) {
		return 0, NewValidationError("colour", string(c), "hex colour must match #RRGGBB")
	}

	value, err := strconv.ParseInt(string(c[1:]), 16, 32)
	if err != nil {
		return 0, NewValidationError("colour", string(c), "hex colour must match #RRGGBB")
	}

	return int(value), nil
}

type rgbColour struct {
	r, g, b int
}

// RGB specifies a colour as red, green and blue components, each 0-255.
func RGB(r, g, b int) Colour {
	return rgbColour{r: r, g: g, b: b}
}

func (c rgbColour) normalise() (int, error) {
	for _, component := range [...]struct {
		name  string
		value int
	}{
		{"red", c.r},
		{"green", c.g},
		{"blue", c.b},
	} {
		if component.value < 0 || component.value > 255 {
			return 0, NewValidationError(
				"colour",
				fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b),
				fmt.Sprintf("%s component must be between 0 and 255", component.name),
			)
		}
	}

	return c.r<<16 | c.g<<8 | c.b, nil
}

type decimalColour int

// Decimal specifies a colour as a raw 24-bit integer, 0-0xFFFFFF.
func Decimal(value int) Colour {
	return decimalColour(value)
}

func (c decimalColour) normalise() (int, error) {
	if c < 0 || c > maxColour {
		return 0, NewValidationError("colour", int(c), "decimal colour must be between 0 and 0xFFFFFF")
	}
	return int(c), nil
}
