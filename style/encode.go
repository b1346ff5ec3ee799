package style

import (
	"bytes"
	"encoding/json"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// EncodeOptions controls text form produced by Encode.
type EncodeOptions struct {
	OmitAbsent bool   // skip absent properties instead of writing null
	Indent     string // indent for nested levels, compact output when empty
}

// Encode produces JSON text of the record with properties in canonical order.
// Lengths are written in canonical form (truncated to integers, Undefined as
// "auto"), so parsing result back is not guaranteed to give identical record.
func Encode(r *Record, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for i := range propertyTable {
		prop := Property(i)
		v := propertyTable[i].value(r)
		if v == nil && opts.OmitAbsent {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		buf.WriteByte('"')
		buf.WriteString(prop.String())
		buf.WriteString(`":`)
		if v == nil {
			buf.WriteString("null")
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("unable to encode property %q: %w", prop, err)
		}
		buf.Write(data)
	}
	buf.WriteByte('}')

	if opts.Indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", opts.Indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// MarshalJSON implements json.Marshaler. Every property is present in the
// output, absent ones as null.
func (r Record) MarshalJSON() ([]byte, error) {
	return Encode(&r, EncodeOptions{})
}

// UnmarshalJSON implements json.Unmarshaler, null is a no-op.
func (r *Record) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	rec, err := Parse(data)
	if err != nil {
		return err
	}
	*r = *rec
	return nil
}

// MarshalYAML implements yaml.Marshaler. Only present properties are written,
// in canonical order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := range propertyTable {
		v := propertyTable[i].value(&r)
		if v == nil {
			continue
		}
		val := &yaml.Node{}
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("unable to encode property %q: %w", Property(i), err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: Property(i).String()},
			val,
		)
	}
	return node, nil
}
