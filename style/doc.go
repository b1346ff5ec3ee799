// Package style decodes flat style documents into typed, validated records
// consumed by a flexbox layout engine, and encodes records back to text.
//
// A style document is a JSON object whose keys are snake_case property
// names:
//
//	{"flex_direction": "row", "width": "50%", "height": "120px", "flex_grow": 2}
//
// # Property groups
//
// Layout flow (closed vocabularies, unknown words are errors):
//   - flex_direction: column, column-reverse, row, row-reverse
//   - justify_content: flex-start, center, flex-end, space-between, space-around, space-evenly
//   - position: relative, absolute
//   - align_content, align_items, align_self: auto, flex-start, center, flex-end, stretch, baseline, space-between, space-around
//   - flex_wrap: nowrap, wrap, wrap-reverse
//   - display: flex, none
//   - overflow: visible, hidden, scroll
//
// Numbers (JSON numbers only): aspect_ratio, border, border_top,
// border_right, border_bottom, border_left, border_start, border_end,
// flex, flex_grow, flex_shrink.
//
// Lengths (see package unit): width, height, min_*/max_*, flex_basis,
// top/right/bottom/left/start/end, margin*, padding*. A length that is not
// a JSON string is silently dropped, a malformed length string is an error.
//
// Appearance: background, either a color string, {"color": ...} or
// {"gradient": {"angle": 90, "stops": [{"color": ..., "offset": 0}, ...]}}.
//
// # Errors
//
// Document which is not a single JSON object fails with *SyntaxError.
// Every property which cannot be decoded produces *PropertyError, all of them
// are combined (go.uber.org/multierr) into the returned error. Unknown
// properties are ignored.
//
// # Usage
//
//	parser := style.NewParser(logger)
//	rec, err := parser.Parse(data)
//
//	for _, d := range rec.Declarations() {
//	    switch d.Property { ... }
//	}
package style
