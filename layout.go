// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

// Point is a 2D floating-point coordinate, used for cursor positions and
// hit-test queries in widget-local space.
type Point struct {
	X, Y float32
}

// Size is a 2D floating-point extent.
type Size struct {
	Width, Height float32
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Pos  Point
	Size Size
}

// Contains reports whether p falls within r, expanded by tolerance on
// both sides along x (used to ease edge-grabbing on narrow text bounds).
func (r Rect) Contains(p Point, xTolerance float32) bool {
	return p.X >= r.Pos.X-xTolerance && p.X <= r.Pos.X+r.Size.Width+xTolerance &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.Size.Height
}

// Affinity disambiguates a cursor sitting exactly at a cluster boundary:
// does it belong to the end of the previous line (Upstream) or the start
// of the next (Downstream)?
type Affinity uint8

const (
	// Upstream binds the cursor to the end of the preceding cluster/line.
	Upstream Affinity = iota
	// Downstream binds the cursor to the start of the following cluster/line.
	Downstream
)

// Cursor is a single caret position: a byte offset into the backing
// string plus the affinity needed to disambiguate boundary positions.
type Cursor struct {
	Index    int
	Affinity Affinity
}

// Selection is a pair of cursors: Anchor (where the drag/shift-extension
// started) and Focus (the live end, where the caret renders). A collapsed
// selection has Anchor == Focus and represents a plain caret.
type Selection struct {
	Anchor Cursor
	Focus  Cursor
}

// Collapsed reports whether the selection has zero length.
func (s Selection) Collapsed() bool { return s.Anchor.Index == s.Focus.Index }

// TextRange returns the selection's byte range in the backing string,
// normalized so Start <= End regardless of drag direction.
func (s Selection) TextRange() (start, end int) {
	if s.Anchor.Index <= s.Focus.Index {
		return s.Anchor.Index, s.Focus.Index
	}
	return s.Focus.Index, s.Anchor.Index
}

// collapsedAt builds a collapsed selection at index with the given affinity.
func collapsedAt(index int, affinity Affinity) Selection {
	c := Cursor{Index: index, Affinity: affinity}
	return Selection{Anchor: c, Focus: c}
}

// Layout is the black-box text shaping & line-breaking engine this module
// depends on but does not implement: it turns a string plus a style into
// a laid-out representation and answers every geometric query the
// registry, TextBox, and TextEdit need. A real implementation backs this
// with a shaper such as go-text/typesetting; textcore never constructs a
// Layout itself, it only asks a LayoutEngine to build one.
type Layout interface {
	// Bounds returns the bounding box of all rendered glyphs, in
	// widget-local coordinates.
	Bounds() Rect
	// FullWidth returns the total laid-out width ignoring any wrap
	// constraint, used for scroll-to-cursor math in single-line mode.
	FullWidth() float32
	// Height returns the laid-out height.
	Height() float32

	// CursorFromByteIndex returns the Cursor at the given byte offset,
	// validating that it falls on a cluster boundary.
	CursorFromByteIndex(index int, affinity Affinity) (Cursor, bool)
	// CursorFromByteIndexUnchecked builds a Cursor without validating the
	// byte offset against cluster boundaries; used for IME composition
	// cursors that the next relayout will revalidate anyway.
	CursorFromByteIndexUnchecked(index int, affinity Affinity) Cursor

	// SelectionFromPoint returns the collapsed selection nearest p.
	SelectionFromPoint(p Point) Selection
	// WordFromPoint returns the selection covering the word under p.
	WordFromPoint(p Point) Selection
	// LineFromPoint returns the selection covering the visual line under p.
	LineFromPoint(p Point) Selection

	// PreviousVisual / NextVisual move a cursor by one visual cluster.
	PreviousVisual(c Cursor) Cursor
	NextVisual(c Cursor) Cursor
	// PreviousVisualWord / NextVisualWord move a cursor by one word.
	PreviousVisualWord(c Cursor) Cursor
	NextVisualWord(c Cursor) Cursor
	// PreviousLine / NextLine move a cursor by one visual line, preserving
	// horizontal position where possible.
	PreviousLine(c Cursor) Cursor
	NextLine(c Cursor) Cursor
	// LineStart / LineEnd return the cursor at the start/end of c's line.
	LineStart(c Cursor) Cursor
	LineEnd(c Cursor) Cursor

	// ExtendToPoint extends sel's focus to p, keeping its anchor fixed.
	ExtendToPoint(sel Selection, p Point) Selection
	// Geometry returns the selection's decoration rectangles (caret or
	// highlight spans) for rendering.
	Geometry(sel Selection) []Rect
	// GeometryWith returns the decoration rectangles for the single
	// cursor c, which need not be the live selection's focus. Nothing in
	// this package calls it; the IME candidate area is computed from
	// Geometry.
	GeometryWith(c Cursor) []Rect

	// HitBoundingBox reports whether p falls within this layout's glyph
	// bounding box, tolerant by xTolerance on the x axis.
	HitBoundingBox(p Point, xTolerance float32) bool
}

// LayoutEngine builds a Layout from a string, a style, and a wrap width.
// It is the sole point of contact between textcore and whatever shaping
// library a host chooses to use.
type LayoutEngine interface {
	Build(text string, style StyleHandle, maxAdvance float32) Layout
}

// Window is the subset of host window functionality textcore needs: only
// IME candidate-window positioning.
type Window interface {
	// SetIMECursorArea requests that the IME candidate window be
	// positioned near the given widget-local rectangle.
	SetIMECursorArea(pos Point, size Size)
}

// Clipboard is the host clipboard, consumed through a scoped two-method
// contract; cut/copy/paste swallow any failure it reports.
type Clipboard interface {
	GetText() (string, bool)
	SetText(text string)
}
