package discord

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a JSON payload into T. Fields absent from the payload stay
// unspecified.
func Decode[T any](r io.Reader) (T, error) {
	var v T

	body, err := io.ReadAll(r)
	if err != nil {
		return v, fmt.Errorf("discord: could not read payload: %w", err)
	}

	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("discord: could not unmarshal %T: %w", v, err)
	}

	return v, nil
}

// Encode writes v as a request body. Unspecified Optional fields are left out.
func Encode(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("discord: could not marshal %T: %w", v, err)
	}
	return payload, nil
}
