package style

import (
	"fmt"

	"flexstyle/unit"
)

// Declaration is a single present property prepared for layout engine.
// Which value field is meaningful depends on Property.Kind():
//
//	ValueKeyword    - Keyword holds FlexDirection, Justify, PositionType, Align, Wrap, Display or Overflow
//	ValueNumber     - Number
//	ValueLength     - Length
//	ValueBackground - Background
type Declaration struct {
	Property   Property
	Keyword    fmt.Stringer
	Number     float64
	Length     unit.Length
	Background *Background
}

// String returns "name: value" form for debugging.
func (d Declaration) String() string {
	switch d.Property.Kind() {
	case ValueKeyword:
		return fmt.Sprintf("%s: %s", d.Property, d.Keyword)
	case ValueNumber:
		return fmt.Sprintf("%s: %v", d.Property, d.Number)
	case ValueLength:
		return fmt.Sprintf("%s: %s", d.Property, d.Length)
	case ValueBackground:
		if d.Background.Gradient != nil {
			return fmt.Sprintf("%s: gradient(%d stops)", d.Property, len(d.Background.Gradient.Stops))
		}
		return fmt.Sprintf("%s: %s", d.Property, d.Background.Color)
	default:
		return d.Property.String()
	}
}

// Declarations lists present properties in canonical order so layout engine
// can apply record with a single switch over Property.
func (r *Record) Declarations() []Declaration {
	var decls []Declaration
	for i := range propertyTable {
		d := Declaration{Property: Property(i)}
		if propertyTable[i].declare(r, &d) {
			decls = append(decls, d)
		}
	}
	return decls
}
