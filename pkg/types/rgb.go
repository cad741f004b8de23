package types

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Rgb is a color whose wire form is a single integer 0xRRGGBB.
type Rgb struct {
	R uint8
	G uint8
	B uint8
}

// Uint32 packs the color big-endian into the low 24 bits.
func (c Rgb) Uint32() uint32 {
	return binary.BigEndian.Uint32([]byte{0, c.R, c.G, c.B})
}

// RgbFromUint32 unpacks a big-endian color. The top byte is ignored.
func RgbFromUint32(v uint32) Rgb {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return Rgb{R: b[1], G: b[2], B: b[3]}
}

// RgbFromUint64 unpacks a color from a 64-bit value. Values that do not fit
// in 32 bits fail with ErrValueOutOfRange instead of being truncated.
func RgbFromUint64(v uint64) (Rgb, error) {
	if v > math.MaxUint32 {
		return Rgb{}, fmt.Errorf("types: rgb value %d doesn't fit u32: %w", v, ErrValueOutOfRange)
	}
	return RgbFromUint32(uint32(v)), nil
}

// String returns the color as #rrggbb.
func (c Rgb) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalJSON implements json.Marshaler.
func (c Rgb) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c.Uint32()), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Rgb) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("types: rgb value %s: %w", data, ErrValueOutOfRange)
		}
		return fmt.Errorf("types: expected an integer representing an RGB color, got %s", data)
	}
	rgb, err := RgbFromUint64(v)
	if err != nil {
		return err
	}
	*c = rgb
	return nil
}
