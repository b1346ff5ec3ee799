package style

import (
	"encoding/json"
	"fmt"

	"flexstyle/unit"
)

// ValueKind specifies value grammar of a property.
type ValueKind int

const (
	ValueUnknown    ValueKind = iota // Not a recognized property
	ValueKeyword                     // Closed vocabulary (FlexDirection, Align, ...)
	ValueNumber                      // Plain float, no units
	ValueLength                      // unit.Length
	ValueBackground                  // Background
)

// String returns the name of the value kind for debugging.
func (k ValueKind) String() string {
	switch k {
	case ValueKeyword:
		return "keyword"
	case ValueNumber:
		return "number"
	case ValueLength:
		return "length"
	case ValueBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Kind returns value grammar of the property.
func (x Property) Kind() ValueKind {
	if !x.IsValid() {
		return ValueUnknown
	}
	return propertyTable[x].kind
}

// property binds Record field to its codec.
type property struct {
	kind ValueKind
	// decode sets record field from JSON value
	decode func(r *Record, raw json.RawMessage) error
	// value returns wire representation of the field, nil when absent
	value func(r *Record) any
	// declare fills layout declaration, false when absent
	declare func(r *Record, d *Declaration) bool
}

// propertyTable maps every Property to Record field and codec. This is the
// only place where property names are tied to fields.
var propertyTable = [...]property{
	PropertyFlexDirection:  keyword(func(r *Record) **FlexDirection { return &r.FlexDirection }, ParseFlexDirection),
	PropertyJustifyContent: keyword(func(r *Record) **Justify { return &r.JustifyContent }, ParseJustify),
	PropertyPosition:       keyword(func(r *Record) **PositionType { return &r.Position }, ParsePositionType),
	PropertyAlignContent:   keyword(func(r *Record) **Align { return &r.AlignContent }, ParseAlign),
	PropertyAlignItems:     keyword(func(r *Record) **Align { return &r.AlignItems }, ParseAlign),
	PropertyAlignSelf:      keyword(func(r *Record) **Align { return &r.AlignSelf }, ParseAlign),
	PropertyFlexWrap:       keyword(func(r *Record) **Wrap { return &r.FlexWrap }, ParseWrap),
	PropertyDisplay:        keyword(func(r *Record) **Display { return &r.Display }, ParseDisplay),
	PropertyOverflow:       keyword(func(r *Record) **Overflow { return &r.Overflow }, ParseOverflow),

	PropertyAspectRatio:  number(func(r *Record) **float64 { return &r.AspectRatio }),
	PropertyBorderBottom: number(func(r *Record) **float64 { return &r.BorderBottom }),
	PropertyBorderRight:  number(func(r *Record) **float64 { return &r.BorderRight }),
	PropertyBorderLeft:   number(func(r *Record) **float64 { return &r.BorderLeft }),
	PropertyBorderTop:    number(func(r *Record) **float64 { return &r.BorderTop }),
	PropertyBorderStart:  number(func(r *Record) **float64 { return &r.BorderStart }),
	PropertyBorderEnd:    number(func(r *Record) **float64 { return &r.BorderEnd }),
	PropertyBorder:       number(func(r *Record) **float64 { return &r.Border }),
	PropertyFlexShrink:   number(func(r *Record) **float64 { return &r.FlexShrink }),
	PropertyFlexGrow:     number(func(r *Record) **float64 { return &r.FlexGrow }),
	PropertyFlex:         number(func(r *Record) **float64 { return &r.Flex }),

	PropertyBottom:            length(func(r *Record) **unit.Length { return &r.Bottom }),
	PropertyEnd:               length(func(r *Record) **unit.Length { return &r.End }),
	PropertyFlexBasis:         length(func(r *Record) **unit.Length { return &r.FlexBasis }),
	PropertyHeight:            length(func(r *Record) **unit.Length { return &r.Height }),
	PropertyLeft:              length(func(r *Record) **unit.Length { return &r.Left }),
	PropertyMargin:            length(func(r *Record) **unit.Length { return &r.Margin }),
	PropertyMarginBottom:      length(func(r *Record) **unit.Length { return &r.MarginBottom }),
	PropertyMarginEnd:         length(func(r *Record) **unit.Length { return &r.MarginEnd }),
	PropertyMarginHorizontal:  length(func(r *Record) **unit.Length { return &r.MarginHorizontal }),
	PropertyMarginLeft:        length(func(r *Record) **unit.Length { return &r.MarginLeft }),
	PropertyMarginRight:       length(func(r *Record) **unit.Length { return &r.MarginRight }),
	PropertyMarginStart:       length(func(r *Record) **unit.Length { return &r.MarginStart }),
	PropertyMarginTop:         length(func(r *Record) **unit.Length { return &r.MarginTop }),
	PropertyMarginVertical:    length(func(r *Record) **unit.Length { return &r.MarginVertical }),
	PropertyMaxHeight:         length(func(r *Record) **unit.Length { return &r.MaxHeight }),
	PropertyMaxWidth:          length(func(r *Record) **unit.Length { return &r.MaxWidth }),
	PropertyMinHeight:         length(func(r *Record) **unit.Length { return &r.MinHeight }),
	PropertyMinWidth:          length(func(r *Record) **unit.Length { return &r.MinWidth }),
	PropertyPadding:           length(func(r *Record) **unit.Length { return &r.Padding }),
	PropertyPaddingBottom:     length(func(r *Record) **unit.Length { return &r.PaddingBottom }),
	PropertyPaddingEnd:        length(func(r *Record) **unit.Length { return &r.PaddingEnd }),
	PropertyPaddingHorizontal: length(func(r *Record) **unit.Length { return &r.PaddingHorizontal }),
	PropertyPaddingLeft:       length(func(r *Record) **unit.Length { return &r.PaddingLeft }),
	PropertyPaddingRight:      length(func(r *Record) **unit.Length { return &r.PaddingRight }),
	PropertyPaddingStart:      length(func(r *Record) **unit.Length { return &r.PaddingStart }),
	PropertyPaddingTop:        length(func(r *Record) **unit.Length { return &r.PaddingTop }),
	PropertyPaddingVertical:   length(func(r *Record) **unit.Length { return &r.PaddingVertical }),
	PropertyRight:             length(func(r *Record) **unit.Length { return &r.Right }),
	PropertyStart:             length(func(r *Record) **unit.Length { return &r.Start }),
	PropertyTop:               length(func(r *Record) **unit.Length { return &r.Top }),
	PropertyWidth:             length(func(r *Record) **unit.Length { return &r.Width }),

	PropertyBackground: {
		kind: ValueBackground,
		decode: func(r *Record, raw json.RawMessage) (err error) {
			r.Background, err = decodeBackground(raw)
			return err
		},
		value: func(r *Record) any {
			if r.Background == nil {
				return nil
			}
			return r.Background
		},
		declare: func(r *Record, d *Declaration) bool {
			if r.Background == nil {
				return false
			}
			d.Background = r.Background
			return true
		},
	},
}

// keyword binds enum field, parse is go-enum generated Parse function.
func keyword[T fmt.Stringer](field func(*Record) **T, parse func(string) (T, error)) property {
	return property{
		kind: ValueKeyword,
		decode: func(r *Record, raw json.RawMessage) error {
			s, ok, err := decodeString(raw)
			if err != nil || !ok {
				return err
			}
			v, err := parse(s)
			if err != nil {
				return err
			}
			*field(r) = &v
			return nil
		},
		value: func(r *Record) any {
			if v := *field(r); v != nil {
				return (*v).String()
			}
			return nil
		},
		declare: func(r *Record, d *Declaration) bool {
			v := *field(r)
			if v == nil {
				return false
			}
			d.Keyword = *v
			return true
		},
	}
}

// number binds scalar field.
func number(field func(*Record) **float64) property {
	return property{
		kind: ValueNumber,
		decode: func(r *Record, raw json.RawMessage) error {
			v, ok, err := decodeNumber(raw)
			if err != nil || !ok {
				return err
			}
			*field(r) = &v
			return nil
		},
		value: func(r *Record) any {
			if v := *field(r); v != nil {
				return *v
			}
			return nil
		},
		declare: func(r *Record, d *Declaration) bool {
			v := *field(r)
			if v == nil {
				return false
			}
			d.Number = *v
			return true
		},
	}
}

// length binds box model field, all of them share unit codec.
func length(field func(*Record) **unit.Length) property {
	return property{
		kind: ValueLength,
		decode: func(r *Record, raw json.RawMessage) (err error) {
			*field(r), err = unit.Decode(raw)
			return err
		},
		value: func(r *Record) any {
			if v := *field(r); v != nil {
				return v.String()
			}
			return nil
		},
		declare: func(r *Record, d *Declaration) bool {
			v := *field(r)
			if v == nil {
				return false
			}
			d.Length = *v
			return true
		},
	}
}
