package numeric

import (
	"bytes"
	"fmt"
)

// MarshalJSON writes a bare JSON number. Integer values are written without a
// fractional part and Float values always with one, so a round trip keeps the
// tag of non-ambiguous values.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.IsNaN() || n.IsInf() {
		return nil, fmt.Errorf("numeric: could not marshal %s: not representable in JSON", n)
	}
	return []byte(n.String()), nil
}

// UnmarshalJSON dual-parses a JSON number. null leaves n unchanged.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return fmt.Errorf("numeric: could not unmarshal %s: %w", data, ErrFormat)
	}
	v, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("numeric: could not unmarshal %s: %w", data, err)
	}
	*n = v
	return nil
}

func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Number) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
