// SPDX-License-Identifier: EPL-2.0

package stl

import (
	"fmt"
	"strings"
)

// Format selects the STL flavour.
type Format int

const (
	Binary Format = iota
	ASCII
)

func (f Format) String() string {
	switch f {
	case Binary:
		return "binary"
	case ASCII:
		return "ascii"
	default:
		return "unknown"
	}
}

// ParseFormat converts "binary" or "ascii" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "binary", "bin":
		return Binary, nil
	case "ascii", "text":
		return ASCII, nil
	default:
		return Binary, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
