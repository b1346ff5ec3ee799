// Package markup decodes style attributes of declarative UI markup documents.
package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"flexstyle/css"
	"flexstyle/style"
)

// DefaultAttribute is attribute name holding element style.
const DefaultAttribute = "style"

// Result is decoded style of a single element.
type Result struct {
	Path     string        // Element path from document root, e.g. /ui/box[2]/text
	Record   *style.Record // nil when Err is set
	Warnings []string      // Inline CSS declarations which were skipped
	Err      error
}

// Scanner walks markup documents and decodes style attribute of every
// element which has one.
type Scanner struct {
	log    *zap.Logger
	attr   string
	styles *style.Parser
	inline *css.Parser
}

// NewScanner creates scanner looking for attr, DefaultAttribute when empty.
func NewScanner(log *zap.Logger, attr string) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	if attr == "" {
		attr = DefaultAttribute
	}
	return &Scanner{
		log:    log.Named("markup"),
		attr:   attr,
		styles: style.NewParser(log),
		inline: css.NewParser(log),
	}
}

// Decode decodes a single attribute value. Values starting with "{" are JSON
// style documents, anything else is treated as inline CSS declaration list.
func (s *Scanner) Decode(value string) (*style.Record, []string, error) {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "{") {
		rec, err := s.styles.Parse([]byte(trimmed))
		return rec, nil, err
	}
	fields, warnings := s.inline.ParseInline([]byte(trimmed))
	rec, err := s.styles.ParseFields(fields)
	return rec, warnings, err
}

// Scan reads markup document from r and decodes all styled elements in
// document order. Error is returned only when document itself could not be
// read, per element failures are reported in Result.Err.
func (s *Scanner) Scan(r io.Reader) ([]Result, error) {
	doc, err := s.read(r)
	if err != nil {
		return nil, err
	}
	return s.scan(doc, nil), nil
}

// Rewrite decodes all styled elements of the document read from r and
// replaces attribute values with render(record) output. Elements which could
// not be decoded are left untouched. Resulting document is written to w.
func (s *Scanner) Rewrite(w io.Writer, r io.Reader, render func(*style.Record) (string, error)) ([]Result, error) {
	doc, err := s.read(r)
	if err != nil {
		return nil, err
	}

	results := s.scan(doc, func(attr *etree.Attr, res *Result) {
		text, err := render(res.Record)
		if err != nil {
			res.Err = fmt.Errorf("unable to render style: %w", err)
			return
		}
		attr.Value = text
	})

	if _, err := doc.WriteTo(w); err != nil {
		return results, fmt.Errorf("unable to write document: %w", err)
	}
	return results, nil
}

func (s *Scanner) read(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read markup: %w", err)
	}
	if doc.Root() == nil {
		return nil, errors.New("unable to read markup: no root element")
	}
	return doc, nil
}

func (s *Scanner) scan(doc *etree.Document, fn func(*etree.Attr, *Result)) []Result {
	var results []Result

	root := doc.Root()
	walk(root, "/"+root.FullTag(), func(el *etree.Element, path string) {
		attr := el.SelectAttr(s.attr)
		if attr == nil {
			return
		}

		res := Result{Path: path}
		res.Record, res.Warnings, res.Err = s.Decode(attr.Value)
		if res.Err != nil {
			res.Record = nil
			s.log.Debug("Unable to decode style", zap.String("path", path), zap.Error(res.Err))
		} else if fn != nil {
			fn(attr, &res)
		}
		results = append(results, res)
	})
	return results
}

// walk visits el and its descendants in document order. Same named siblings
// are distinguished by 1 based index.
func walk(el *etree.Element, path string, fn func(*etree.Element, string)) {
	fn(el, path)

	children := el.ChildElements()
	counts := make(map[string]int, len(children))
	for _, c := range children {
		counts[c.FullTag()]++
	}
	seen := make(map[string]int, len(children))
	for _, c := range children {
		tag := c.FullTag()
		seen[tag]++
		p := path + "/" + tag
		if counts[tag] > 1 {
			p = fmt.Sprintf("%s[%d]", p, seen[tag])
		}
		walk(c, p, fn)
	}
}

// ScanBytes is a convenience wrapper around Scan.
func (s *Scanner) ScanBytes(data []byte) ([]Result, error) {
	return s.Scan(bytes.NewReader(data))
}
