package discord

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"personal/discord_wire/src/numeric"
	"personal/discord_wire/src/optional"
)

type ApplicationCommandOptionType int

const (
	OptionTypeSubCommand      ApplicationCommandOptionType = 1
	OptionTypeSubCommandGroup ApplicationCommandOptionType = 2
	OptionTypeString          ApplicationCommandOptionType = 3
	OptionTypeInteger         ApplicationCommandOptionType = 4
	OptionTypeBoolean         ApplicationCommandOptionType = 5
	OptionTypeUser            ApplicationCommandOptionType = 6
	OptionTypeChannel         ApplicationCommandOptionType = 7
	OptionTypeRole            ApplicationCommandOptionType = 8
	OptionTypeMentionable     ApplicationCommandOptionType = 9
	OptionTypeNumber          ApplicationCommandOptionType = 10
	OptionTypeAttachment      ApplicationCommandOptionType = 11
)

var ErrInvalidOption = errors.New("discord: invalid command option")

// Value is a command option or choice value. The vendor sends a string, a
// boolean or a number in the same field.
type Value struct {
	str  optional.Optional[string]
	flag optional.Optional[bool]
	num  optional.Optional[numeric.Number]
}

func StringValue(s string) Value {
	return Value{str: optional.Some(s)}
}

func BoolValue(b bool) Value {
	return Value{flag: optional.Some(b)}
}

func NumberValue(n numeric.Number) Value {
	return Value{num: optional.Some(n)}
}

func (v Value) AsString() (string, bool) {
	return v.str.Get()
}

func (v Value) AsBool() (bool, bool) {
	return v.flag.Get()
}

func (v Value) AsNumber() (numeric.Number, bool) {
	return v.num.Get()
}

func (v Value) IsZero() bool {
	return !v.str.IsSpecified() && !v.flag.IsSpecified() && !v.num.IsSpecified()
}

func (v Value) String() string {
	switch {
	case v.str.IsSpecified():
		return v.str.Value()
	case v.flag.IsSpecified():
		return fmt.Sprint(v.flag.Value())
	case v.num.IsSpecified():
		return v.num.Value().String()
	}
	return ""
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.str.IsSpecified():
		return json.Marshal(v.str.Value())
	case v.flag.IsSpecified():
		return json.Marshal(v.flag.Value())
	case v.num.IsSpecified():
		return v.num.Value().MarshalJSON()
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("discord: could not unmarshal option value: empty input")
	}

	*v = Value{}
	switch data[0] {
	case 'n':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("discord: could not unmarshal option value: %w", err)
		}
		v.str = optional.Some(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("discord: could not unmarshal option value: %w", err)
		}
		v.flag = optional.Some(b)
	default:
		var n numeric.Number
		if err := n.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("discord: could not unmarshal option value: %w", err)
		}
		v.num = optional.Some(n)
	}
	return nil
}

type ApplicationCommandOptionChoice struct {
	Name              string                               `json:"name"`
	NameLocalizations optional.Optional[map[string]string] `json:"name_localizations,omitzero"`
	Value             Value                                `json:"value"`
}

type ApplicationCommandOption struct {
	Type                     ApplicationCommandOptionType                        `json:"type"`
	Name                     string                                              `json:"name"`
	NameLocalizations        optional.Optional[map[string]string]                `json:"name_localizations,omitzero"`
	Description              string                                              `json:"description"`
	DescriptionLocalizations optional.Optional[map[string]string]                `json:"description_localizations,omitzero"`
	Required                 optional.Optional[bool]                             `json:"required,omitzero"`
	Choices                  optional.Optional[[]ApplicationCommandOptionChoice] `json:"choices,omitzero"`
	Options                  optional.Optional[[]ApplicationCommandOption]       `json:"options,omitzero"`
	ChannelTypes             optional.Optional[[]ChannelType]                    `json:"channel_types,omitzero"`
	MinValue                 optional.Optional[numeric.Number]                   `json:"min_value,omitzero"`
	MaxValue                 optional.Optional[numeric.Number]                   `json:"max_value,omitzero"`
	MinLength                optional.Optional[int]                              `json:"min_length,omitzero"`
	MaxLength                optional.Optional[int]                              `json:"max_length,omitzero"`
	Autocomplete             optional.Optional[bool]                             `json:"autocomplete,omitzero"`
}

// Validate checks that choices and bounds agree with the option type: an
// integer option only takes integral numbers, a number option any number,
// and a string option only strings.
func (o ApplicationCommandOption) Validate() error {
	for _, choice := range o.Choices.ValueOrZero() {
		if err := o.checkValue(choice.Value); err != nil {
			return fmt.Errorf("%w: %s: choice %q: %w", ErrInvalidOption, o.Name, choice.Name, err)
		}
	}

	for _, bound := range []optional.Optional[numeric.Number]{o.MinValue, o.MaxValue} {
		if !bound.IsSpecified() {
			continue
		}
		if o.Type != OptionTypeInteger && o.Type != OptionTypeNumber {
			return fmt.Errorf("%w: %s: min_value/max_value on a non-numeric option", ErrInvalidOption, o.Name)
		}
		if err := o.checkValue(NumberValue(bound.Value())); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidOption, o.Name, err)
		}
	}
	if o.MinValue.IsSpecified() && o.MaxValue.IsSpecified() && o.MinValue.Value().Compare(o.MaxValue.Value()) > 0 {
		return fmt.Errorf("%w: %s: min_value %s above max_value %s", ErrInvalidOption, o.Name, o.MinValue.Value(), o.MaxValue.Value())
	}

	for _, sub := range o.Options.ValueOrZero() {
		if err := sub.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o ApplicationCommandOption) checkValue(v Value) error {
	switch o.Type {
	case OptionTypeString:
		if _, ok := v.AsString(); !ok {
			return fmt.Errorf("%s is not a string", v)
		}
	case OptionTypeInteger:
		n, ok := v.AsNumber()
		if !ok {
			return fmt.Errorf("%s is not a number", v)
		}
		if !IsIntegerChoice(n) {
			return fmt.Errorf("%s is not an integer", n)
		}
	case OptionTypeNumber:
		if _, ok := v.AsNumber(); !ok {
			return fmt.Errorf("%s is not a number", v)
		}
	default:
		return fmt.Errorf("option type %d takes no choices", o.Type)
	}
	return nil
}

// IsIntegerChoice reports whether a decoded number can serve as an integer
// choice. 3 and 3.0 both qualify; 3.5 does not.
func IsIntegerChoice(n numeric.Number) bool {
	if n.IsInteger() {
		return true
	}
	return !n.IsNaN() && !n.IsInf() && n.EqualIntCast(n.Int64(), false)
}

// InteractionDataOption is an option value a user supplied when invoking a
// command.
type InteractionDataOption struct {
	Name    string                                     `json:"name"`
	Type    ApplicationCommandOptionType               `json:"type"`
	Value   Value                                      `json:"value,omitzero"`
	Options optional.Optional[[]InteractionDataOption] `json:"options,omitzero"`
	Focused optional.Optional[bool]                    `json:"focused,omitzero"`
}

// Find returns the nested option with the given name.
func (o InteractionDataOption) Find(name string) (InteractionDataOption, bool) {
	for _, opt := range o.Options.ValueOrZero() {
		if opt.Name == name {
			return opt, true
		}
	}
	return InteractionDataOption{}, false
}
