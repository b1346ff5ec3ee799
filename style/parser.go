package style

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Field is a single property of a flat style document, value is JSON.
type Field struct {
	Name  string
	Value json.RawMessage
}

// Parser decodes style documents into Records. It keeps no state between
// calls and may be used concurrently.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new style parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("style-parser")}
}

// Parse decodes JSON object with snake_case property names into Record.
// Unknown properties are ignored. All malformed properties are reported,
// each as *PropertyError, combined into single error.
func (p *Parser) Parse(data []byte) (*Record, error) {
	fields, err := readFields(data)
	if err != nil {
		return nil, err
	}
	return p.ParseFields(fields)
}

// ParseFields decodes already split flat document into Record.
func (p *Parser) ParseFields(fields []Field) (*Record, error) {
	var (
		rec  = &Record{}
		errs error
		seen = make(map[Property]bool, len(fields))
	)

	for _, f := range fields {
		prop, err := ParseProperty(f.Name)
		if err != nil {
			p.log.Debug("Ignoring unknown property", zap.String("property", f.Name))
			continue
		}
		if seen[prop] {
			errs = multierr.Append(errs, &PropertyError{Property: f.Name, Err: ErrDuplicateProperty})
			continue
		}
		seen[prop] = true

		entry := &propertyTable[prop]
		if err := entry.decode(rec, f.Value); err != nil {
			errs = multierr.Append(errs, &PropertyError{Property: f.Name, Err: err})
			continue
		}
		if entry.kind == ValueLength && !isNull(f.Value) && entry.value(rec) == nil {
			p.log.Debug("Dropping length of unexpected shape", zap.String("property", f.Name), zap.String("type", describe(f.Value)))
		}
	}

	if errs != nil {
		p.log.Debug("Style document rejected", zap.Int("errors", len(multierr.Errors(errs))))
		return nil, errs
	}
	return rec, nil
}

// Parse decodes style document without logging.
func Parse(data []byte) (*Record, error) {
	return NewParser(nil).Parse(data)
}

// readFields splits top level JSON object into fields keeping document order.
func readFields(data []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, &SyntaxError{Err: eofToUnexpected(err)}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &SyntaxError{Err: fmt.Errorf("expected object, got %v", tokenName(tok))}
	}

	var fields []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &SyntaxError{Err: eofToUnexpected(err)}
		}
		// inside object decoder only returns string keys
		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &SyntaxError{Err: fmt.Errorf("value of %q: %w", name, eofToUnexpected(err))}
		}
		fields = append(fields, Field{Name: name, Value: raw})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, &SyntaxError{Err: eofToUnexpected(err)}
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, &SyntaxError{Err: err}
		}
		return nil, &SyntaxError{Err: fmt.Errorf("unexpected %v after object", tokenName(tok))}
	}
	return fields, nil
}

func eofToUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func tokenName(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return fmt.Sprintf("%q", v.String())
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
