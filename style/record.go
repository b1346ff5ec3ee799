package style

import "flexstyle/unit"

// Record is a flat set of style properties of a single element. Every field
// is optional: nil means property is absent and layout engine default applies,
// never zero. Record is value data - parser creates it once and nothing in
// this module changes it afterwards.
type Record struct {
	// Layout flow
	FlexDirection  *FlexDirection
	JustifyContent *Justify
	Position       *PositionType
	AlignContent   *Align
	AlignItems     *Align
	AlignSelf      *Align
	FlexWrap       *Wrap
	Display        *Display
	Overflow       *Overflow

	// Scalars
	AspectRatio  *float64
	BorderBottom *float64
	BorderRight  *float64
	BorderLeft   *float64
	BorderTop    *float64
	BorderStart  *float64
	BorderEnd    *float64
	Border       *float64
	FlexShrink   *float64
	FlexGrow     *float64
	Flex         *float64

	// Box model lengths
	Bottom            *unit.Length
	End               *unit.Length
	FlexBasis         *unit.Length
	Height            *unit.Length
	Left              *unit.Length
	Margin            *unit.Length
	MarginBottom      *unit.Length
	MarginEnd         *unit.Length
	MarginHorizontal  *unit.Length
	MarginLeft        *unit.Length
	MarginRight       *unit.Length
	MarginStart       *unit.Length
	MarginTop         *unit.Length
	MarginVertical    *unit.Length
	MaxHeight         *unit.Length
	MaxWidth          *unit.Length
	MinHeight         *unit.Length
	MinWidth          *unit.Length
	Padding           *unit.Length
	PaddingBottom     *unit.Length
	PaddingEnd        *unit.Length
	PaddingHorizontal *unit.Length
	PaddingLeft       *unit.Length
	PaddingRight      *unit.Length
	PaddingStart      *unit.Length
	PaddingTop        *unit.Length
	PaddingVertical   *unit.Length
	Right             *unit.Length
	Start             *unit.Length
	Top               *unit.Length
	Width             *unit.Length

	// Appearance
	Background *Background
}

// Has returns true if property p is present in the record.
func (r *Record) Has(p Property) bool {
	if !p.IsValid() {
		return false
	}
	return propertyTable[p].value(r) != nil
}

// Len returns number of present properties.
func (r *Record) Len() int {
	var n int
	for i := range propertyTable {
		if propertyTable[i].value(r) != nil {
			n++
		}
	}
	return n
}

// IsEmpty returns true if no property is present.
func (r *Record) IsEmpty() bool {
	return r.Len() == 0
}
