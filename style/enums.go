package style

//go:generate go tool go-enum --marshal --names

// Main axis for laying out children.
// ENUM(column, column-reverse, row, row-reverse)
type FlexDirection int

// Distribution of children along main axis.
// ENUM(flex-start, center, flex-end, space-between, space-around, space-evenly)
type Justify int

// Positioning on cross axis, used by align_content, align_items and align_self.
// ENUM(auto, flex-start, center, flex-end, stretch, baseline, space-between, space-around)
type Align int

// How element is positioned relative to its normal flow position.
// ENUM(relative, absolute)
type PositionType int

// Whether children are forced onto a single line.
// ENUM(nowrap, wrap, wrap-reverse)
type Wrap int

// ENUM(flex, none)
type Display int

// Handling of content overflowing element box.
// ENUM(visible, hidden, scroll)
type Overflow int

// Recognized style properties in canonical order. String form is the key used
// in style documents.
// ENUM(
// flex_direction, justify_content, position, align_content, align_items, align_self,
// flex_wrap, display, overflow,
// aspect_ratio, border_bottom, border_right, border_left, border_top, border_start, border_end, border,
// flex_shrink, flex_grow, flex,
// bottom, end, flex_basis, height, left,
// margin, margin_bottom, margin_end, margin_horizontal, margin_left, margin_right, margin_start, margin_top, margin_vertical,
// max_height, max_width, min_height, min_width,
// padding, padding_bottom, padding_end, padding_horizontal, padding_left, padding_right, padding_start, padding_top, padding_vertical,
// right, start, top, width,
// background
// )
type Property int
