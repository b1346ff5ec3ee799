package css

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"flexstyle/style"
)

// Value represents a parsed CSS declaration value.
type Value struct {
	Raw       string        // Value text with whitespace runs collapsed (e.g., "50%", "rgb(1, 2, 3)")
	Token     css.TokenType // Type of the single component value, FunctionToken for functional notation
	Multi     bool          // More than one component value (e.g., "1px 2px")
	Important bool          // Declaration was marked !important
}

// JSON converts value to the JSON form accepted by style parser.
func (v Value) JSON() (json.RawMessage, error) {
	if v.Multi {
		return nil, fmt.Errorf("multi-value %q is not supported", v.Raw)
	}
	switch v.Token {
	case css.NumberToken:
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", v.Raw, err)
		}
		return json.Marshal(f)
	case css.IdentToken:
		return json.Marshal(strings.ToLower(v.Raw))
	case css.DimensionToken:
		return json.Marshal(strings.ToLower(v.Raw))
	case css.StringToken:
		return json.Marshal(unquote(v.Raw))
	case css.PercentageToken, css.HashToken, css.FunctionToken:
		return json.Marshal(v.Raw)
	default:
		return nil, fmt.Errorf("unsupported value %q", v.Raw)
	}
}

// Declaration is a single "name: value" pair of a declaration list.
type Declaration struct {
	Name  string // Property name as written, lower-cased (e.g., "flex-grow")
	Value Value
}

// Field converts declaration to style field. CSS property names use
// kebab-case while style properties are snake_case.
func (d Declaration) Field() (style.Field, error) {
	raw, err := d.Value.JSON()
	if err != nil {
		return style.Field{}, err
	}
	return style.Field{Name: propertyName(d.Name), Value: raw}, nil
}

func propertyName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}

func cssName(p style.Property) string {
	return strings.ReplaceAll(p.String(), "_", "-")
}

// WriteTo writes present properties of the record as inline declaration
// list, in canonical property order.
func WriteTo(w io.Writer, r *style.Record) (int64, error) {
	var total int64
	for i, d := range r.Declarations() {
		sep := "; "
		if i == 0 {
			sep = ""
		}
		n, err := fmt.Fprintf(w, "%s%s: %s", sep, cssName(d.Property), formatValue(d))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Format returns inline declaration list of the record. Gradients are
// written as linear-gradient() and are read back as color strings.
func Format(r *style.Record) string {
	var sb strings.Builder
	WriteTo(&sb, r) //nolint:errcheck
	return sb.String()
}

func formatValue(d style.Declaration) string {
	switch d.Property.Kind() {
	case style.ValueKeyword:
		return d.Keyword.String()
	case style.ValueNumber:
		return strconv.FormatFloat(d.Number, 'g', -1, 64)
	case style.ValueLength:
		return d.Length.String()
	case style.ValueBackground:
		g := d.Background.Gradient
		if g == nil {
			return d.Background.Color
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "linear-gradient(%sdeg", strconv.FormatFloat(g.Angle, 'g', -1, 64))
		for _, s := range g.Stops {
			fmt.Fprintf(&sb, ", %s %s%%", s.Color, strconv.FormatFloat(s.Offset*100, 'g', -1, 64))
		}
		sb.WriteByte(')')
		return sb.String()
	default:
		return ""
	}
}
