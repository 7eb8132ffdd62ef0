// Package nbtconv converts text components between their json
// and their binary tag (nbt) representation used since Minecraft 1.20.3.
package nbtconv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Tnze/go-mc/nbt"
)

// textComponent is the subset of the text component tree
// that survives the json <-> binary tag conversion.
//
// Booleans are carried as TagByte and omitted when false, so an explicit
// false decoration is not preserved. Click and hover events are dropped.
type textComponent struct {
	Text          string          `json:"text" nbt:"text"`
	Translate     string          `json:"translate,omitempty" nbt:"translate,omitempty"`
	Color         string          `json:"color,omitempty" nbt:"color,omitempty"`
	Bold          bool            `json:"bold,omitempty" nbt:"bold,omitempty"`
	Italic        bool            `json:"italic,omitempty" nbt:"italic,omitempty"`
	Underlined    bool            `json:"underlined,omitempty" nbt:"underlined,omitempty"`
	Strikethrough bool            `json:"strikethrough,omitempty" nbt:"strikethrough,omitempty"`
	Obfuscated    bool            `json:"obfuscated,omitempty" nbt:"obfuscated,omitempty"`
	Extra         []textComponent `json:"extra,omitempty" nbt:"extra,omitempty"`
}

// rawTextComponent is used for decoding since list elements
// may either be compounds or plain strings.
type rawTextComponent struct {
	Text          string           `nbt:"text"`
	Translate     string           `nbt:"translate"`
	Color         string           `nbt:"color"`
	Bold          bool             `nbt:"bold"`
	Italic        bool             `nbt:"italic"`
	Underlined    bool             `nbt:"underlined"`
	Strikethrough bool             `nbt:"strikethrough"`
	Obfuscated    bool             `nbt:"obfuscated"`
	Extra         []nbt.RawMessage `nbt:"extra"`
}

// UnmarshalJSON accepts the shorthand string form of a component.
func (c *textComponent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) != 0 && data[0] == '"' {
		*c = textComponent{}
		return json.Unmarshal(data, &c.Text)
	}
	type plain textComponent
	return json.Unmarshal(data, (*plain)(c))
}

// JsonToBinaryTag converts a json text component to a binary tag.
//
// Example: {"text":"Hi","color":"red","bold":true} -> {text:"Hi",color:"red",bold:1b}
func JsonToBinaryTag(j json.RawMessage) (nbt.RawMessage, error) {
	var c textComponent
	if err := json.Unmarshal(j, &c); err != nil {
		return nbt.RawMessage{}, fmt.Errorf("error unmarshalling json component: %w", err)
	}
	b, err := nbt.Marshal(c)
	if err != nil {
		return nbt.RawMessage{}, fmt.Errorf("error marshalling component to binary tag: %w", err)
	}
	// b is a named root tag: type, name length (empty name), payload.
	// The network format drops the root name.
	if len(b) < 3 {
		return nbt.RawMessage{}, errors.New("binary tag too short")
	}
	return nbt.RawMessage{Type: b[0], Data: b[3:]}, nil
}

// BinaryTagToJSON converts a binary tag text component to json.
func BinaryTagToJSON(tag *nbt.RawMessage) (json.RawMessage, error) {
	c, err := decode(*tag)
	if err != nil {
		return nil, err
	}
	return json.Marshal(c)
}

func decode(tag nbt.RawMessage) (textComponent, error) {
	switch tag.Type {
	case nbt.TagString:
		var s string
		if err := tag.Unmarshal(&s); err != nil {
			return textComponent{}, fmt.Errorf("error decoding string component: %w", err)
		}
		return textComponent{Text: s}, nil
	case nbt.TagCompound:
		var raw rawTextComponent
		if err := tag.Unmarshal(&raw); err != nil {
			return textComponent{}, fmt.Errorf("error decoding compound component: %w", err)
		}
		c := textComponent{
			Text:          raw.Text,
			Translate:     raw.Translate,
			Color:         raw.Color,
			Bold:          raw.Bold,
			Italic:        raw.Italic,
			Underlined:    raw.Underlined,
			Strikethrough: raw.Strikethrough,
			Obfuscated:    raw.Obfuscated,
		}
		for _, e := range raw.Extra {
			child, err := decode(e)
			if err != nil {
				return textComponent{}, err
			}
			c.Extra = append(c.Extra, child)
		}
		return c, nil
	default:
		return textComponent{}, fmt.Errorf("unexpected component binary tag type %d", tag.Type)
	}
}
