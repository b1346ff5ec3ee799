package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"flexstyle/style"
)

// Parser parses inline CSS declaration lists (content of a style attribute).
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Declarations parses declaration list in source order. Declarations which
// could not be parsed and custom properties are reported as warnings.
func (p *Parser) Declarations(data []byte) ([]Declaration, []string) {
	var (
		decls    []Declaration
		warnings []string
	)

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), true)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				warnings = append(warnings, "malformed declaration list: "+err.Error())
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return decls, warnings

		case css.CustomPropertyGrammar:
			name := string(data)
			warnings = append(warnings, "unsupported custom property: "+name)
			p.log.Debug("Skipping custom property", zap.String("property", name))

		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			values := parser.Values()
			if len(values) == 0 {
				warnings = append(warnings, "empty value: "+name)
				continue
			}
			decls = append(decls, Declaration{Name: name, Value: parseValue(values)})
		}
	}
}

// ParseInline parses declaration list into style fields. Fields are ordered
// by first appearance of the property, later declarations of the same
// property replace earlier ones.
func (p *Parser) ParseInline(data []byte) ([]style.Field, []string) {
	decls, warnings := p.Declarations(data)

	fields := make([]style.Field, 0, len(decls))
	seen := make(map[string]int, len(decls))
	for _, d := range decls {
		f, err := d.Field()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", d.Name, err))
			p.log.Debug("Skipping declaration", zap.String("property", d.Name), zap.Error(err))
			continue
		}
		if i, ok := seen[f.Name]; ok {
			fields[i].Value = f.Value
			continue
		}
		seen[f.Name] = len(fields)
		fields = append(fields, f)
	}
	return fields, warnings
}

// parseValue converts CSS tokens to a Value.
func parseValue(tokens []css.Token) Value {
	tokens, important := stripImportant(tokens)

	// Build raw value string, whitespace runs collapse to a single space and
	// commas are always followed by one
	var (
		raw         strings.Builder
		space       bool
		significant []css.Token
	)
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken, css.CommentToken:
			space = raw.Len() > 0
			continue
		case css.CommaToken:
			raw.WriteString(",")
			space = true
		default:
			if space {
				raw.WriteByte(' ')
			}
			raw.Write(t.Data)
			space = false
		}
		significant = append(significant, t)
	}
	val := Value{
		Raw:       raw.String(),
		Important: important,
	}

	switch {
	case len(significant) == 0:
		val.Multi = true
	case significant[0].TokenType == css.FunctionToken && significant[len(significant)-1].TokenType == css.RightParenthesisToken:
		// Handle function tokens (rgb(), linear-gradient(), etc.)
		val.Token = css.FunctionToken
		val.Raw = strings.ReplaceAll(val.Raw, "( ", "(")
		val.Raw = strings.ReplaceAll(val.Raw, " )", ")")
	case len(significant) == 1:
		val.Token = significant[0].TokenType
	default:
		val.Multi = true
	}
	return val
}

// stripImportant removes trailing "!important" from value tokens.
func stripImportant(tokens []css.Token) ([]css.Token, bool) {
	end := len(tokens)
	for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
		end--
	}
	if end < 2 {
		return tokens, false
	}
	last, prev := tokens[end-1], tokens[end-2]
	if last.TokenType == css.IdentToken && strings.EqualFold(string(last.Data), "important") &&
		prev.TokenType == css.DelimToken && string(prev.Data) == "!" {
		return tokens[:end-2], true
	}
	return tokens, false
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
