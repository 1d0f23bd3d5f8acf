package discord

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

var ErrUnknownKind = errors.New("discord: unknown payload kind")

var payloadKinds = map[string]func(io.Reader) (any, error){
	"channel":        decodeAny[Channel],
	"user":           decodeAny[User],
	"modify-channel": decodeAny[ModifyChannelParams],
	"command-option": decodeAny[ApplicationCommandOption],
	"option":         decodeAny[InteractionDataOption],
	"packet":         decodeAny[Packet],
}

func decodeAny[T any](r io.Reader) (any, error) {
	v, err := Decode[T](r)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Kinds returns the payload kind names DecodeKind accepts, sorted.
func Kinds() []string {
	return slices.Sorted(maps.Keys(payloadKinds))
}

// DecodeKind decodes a payload of the named kind. The result is the value
// type, not a pointer.
func DecodeKind(kind string, r io.Reader) (any, error) {
	decode, ok := payloadKinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q: expected one of %v", ErrUnknownKind, kind, Kinds())
	}
	return decode(r)
}
