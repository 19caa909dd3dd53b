// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

import (
	"strings"
	"unicode/utf8"
)

// fakeCharWidth and fakeLineHeight give the fake layout engine below a
// trivial monospace metric, just enough to make point/geometry queries
// exercise real math in tests without depending on an actual shaper.
const (
	fakeCharWidth  = 8
	fakeLineHeight = 16
)

// fakeLayout is a minimal, deterministic stand-in for a real shaped
// Layout: every rune occupies one fixed-width column, lines are split on
// '\n', and "words" are split on spaces. It exists purely to drive
// textcore's own logic in tests without depending on a real shaping
// library.
type fakeLayout struct {
	text string
}

func newFakeLayout(text string) *fakeLayout { return &fakeLayout{text: text} }

func (l *fakeLayout) lines() []string { return strings.Split(l.text, "\n") }

func (l *fakeLayout) lineBounds(index int) (start, end int) {
	start = strings.LastIndexByte(l.text[:index], '\n') + 1
	if rel := strings.IndexByte(l.text[index:], '\n'); rel >= 0 {
		end = index + rel
	} else {
		end = len(l.text)
	}
	return start, end
}

func (l *fakeLayout) lineNumber(index int) int {
	return strings.Count(l.text[:index], "\n")
}

func (l *fakeLayout) xOf(index int) float32 {
	start, _ := l.lineBounds(index)
	return float32(utf8.RuneCountInString(l.text[start:index])) * fakeCharWidth
}

func (l *fakeLayout) yOf(index int) float32 {
	return float32(l.lineNumber(index)) * fakeLineHeight
}

func (l *fakeLayout) maxLineWidth() float32 {
	var max int
	for _, line := range l.lines() {
		if n := utf8.RuneCountInString(line); n > max {
			max = n
		}
	}
	return float32(max) * fakeCharWidth
}

func (l *fakeLayout) Bounds() Rect {
	return Rect{Size: Size{Width: l.maxLineWidth(), Height: float32(len(l.lines())) * fakeLineHeight}}
}

func (l *fakeLayout) FullWidth() float32 { return l.maxLineWidth() }
func (l *fakeLayout) Height() float32    { return float32(len(l.lines())) * fakeLineHeight }

func nextRuneBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}

func prevRuneBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s[:i])
	return i - size
}

func (l *fakeLayout) CursorFromByteIndex(index int, affinity Affinity) (Cursor, bool) {
	if index < 0 || index > len(l.text) || !utf8.RuneStart(byteAt(l.text, index)) {
		return Cursor{}, false
	}
	return Cursor{Index: index, Affinity: affinity}, true
}

func byteAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

func (l *fakeLayout) CursorFromByteIndexUnchecked(index int, affinity Affinity) Cursor {
	if index < 0 {
		index = 0
	}
	if index > len(l.text) {
		index = len(l.text)
	}
	return Cursor{Index: index, Affinity: affinity}
}

func (l *fakeLayout) SelectionFromPoint(p Point) Selection {
	lineIdx := int(p.Y / fakeLineHeight)
	lines := l.lines()
	if lineIdx < 0 {
		lineIdx = 0
	}
	if lineIdx >= len(lines) {
		lineIdx = len(lines) - 1
	}
	var start int
	for i := 0; i < lineIdx; i++ {
		start += len(lines[i]) + 1
	}
	col := int(p.X/fakeCharWidth + 0.5)
	runes := []rune(lines[lineIdx])
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	idx := start + len(string(runes[:col]))
	return collapsedAt(idx, Upstream)
}

func (l *fakeLayout) WordFromPoint(p Point) Selection {
	c := l.SelectionFromPoint(p).Focus
	s, e := c.Index, c.Index
	for s > 0 && l.text[s-1] != ' ' && l.text[s-1] != '\n' {
		s--
	}
	for e < len(l.text) && l.text[e] != ' ' && l.text[e] != '\n' {
		e++
	}
	return Selection{Anchor: Cursor{Index: s, Affinity: Upstream}, Focus: Cursor{Index: e, Affinity: Upstream}}
}

func (l *fakeLayout) LineFromPoint(p Point) Selection {
	c := l.SelectionFromPoint(p).Focus
	s, e := l.lineBounds(c.Index)
	return Selection{Anchor: Cursor{Index: s, Affinity: Upstream}, Focus: Cursor{Index: e, Affinity: Upstream}}
}

func (l *fakeLayout) PreviousVisual(c Cursor) Cursor {
	return Cursor{Index: prevRuneBoundary(l.text, c.Index), Affinity: Upstream}
}

func (l *fakeLayout) NextVisual(c Cursor) Cursor {
	return Cursor{Index: nextRuneBoundary(l.text, c.Index), Affinity: Upstream}
}

func (l *fakeLayout) PreviousVisualWord(c Cursor) Cursor {
	i := c.Index
	for i > 0 && l.text[i-1] == ' ' {
		i--
	}
	for i > 0 && l.text[i-1] != ' ' && l.text[i-1] != '\n' {
		i--
	}
	return Cursor{Index: i, Affinity: Upstream}
}

func (l *fakeLayout) NextVisualWord(c Cursor) Cursor {
	i := c.Index
	for i < len(l.text) && l.text[i] == ' ' {
		i++
	}
	for i < len(l.text) && l.text[i] != ' ' && l.text[i] != '\n' {
		i++
	}
	return Cursor{Index: i, Affinity: Upstream}
}

func (l *fakeLayout) PreviousLine(c Cursor) Cursor {
	lineIdx := l.lineNumber(c.Index)
	if lineIdx == 0 {
		return Cursor{Index: 0, Affinity: Upstream}
	}
	col := utf8.RuneCountInString(l.text[func() int { s, _ := l.lineBounds(c.Index); return s }():c.Index])
	lines := l.lines()
	var start int
	for i := 0; i < lineIdx-1; i++ {
		start += len(lines[i]) + 1
	}
	prev := []rune(lines[lineIdx-1])
	if col > len(prev) {
		col = len(prev)
	}
	return Cursor{Index: start + len(string(prev[:col])), Affinity: Upstream}
}

func (l *fakeLayout) NextLine(c Cursor) Cursor {
	lines := l.lines()
	lineIdx := l.lineNumber(c.Index)
	if lineIdx >= len(lines)-1 {
		return Cursor{Index: len(l.text), Affinity: Upstream}
	}
	s, _ := l.lineBounds(c.Index)
	col := utf8.RuneCountInString(l.text[s:c.Index])
	var start int
	for i := 0; i <= lineIdx; i++ {
		start += len(lines[i]) + 1
	}
	next := []rune(lines[lineIdx+1])
	if col > len(next) {
		col = len(next)
	}
	return Cursor{Index: start + len(string(next[:col])), Affinity: Upstream}
}

func (l *fakeLayout) LineStart(c Cursor) Cursor {
	s, _ := l.lineBounds(c.Index)
	return Cursor{Index: s, Affinity: Upstream}
}

func (l *fakeLayout) LineEnd(c Cursor) Cursor {
	_, e := l.lineBounds(c.Index)
	return Cursor{Index: e, Affinity: Upstream}
}

func (l *fakeLayout) ExtendToPoint(sel Selection, p Point) Selection {
	focus := l.SelectionFromPoint(p).Focus
	return Selection{Anchor: sel.Anchor, Focus: focus}
}

func (l *fakeLayout) Geometry(sel Selection) []Rect {
	x := l.xOf(sel.Focus.Index)
	y := l.yOf(sel.Focus.Index)
	return []Rect{{Pos: Point{X: x, Y: y}, Size: Size{Width: 1, Height: fakeLineHeight}}}
}

func (l *fakeLayout) GeometryWith(c Cursor) []Rect {
	return []Rect{{Pos: Point{X: l.xOf(c.Index), Y: l.yOf(c.Index)}, Size: Size{Width: 1, Height: fakeLineHeight}}}
}

func (l *fakeLayout) HitBoundingBox(p Point, xTolerance float32) bool {
	b := l.Bounds()
	return b.Contains(p, xTolerance)
}

// fakeEngine builds fakeLayouts, ignoring style and wrap width entirely.
type fakeEngine struct{}

func (fakeEngine) Build(text string, style StyleHandle, maxAdvance float32) Layout {
	return newFakeLayout(text)
}

// fakeClipboard is an in-memory Clipboard for tests.
type fakeClipboard struct {
	text string
	has  bool
}

func (c *fakeClipboard) GetText() (string, bool) { return c.text, c.has }
func (c *fakeClipboard) SetText(s string)        { c.text, c.has = s, true }

// fakeWindow records the last requested IME cursor area.
type fakeWindow struct {
	pos  Point
	size Size
}

func (w *fakeWindow) SetIMECursorArea(pos Point, size Size) { w.pos, w.size = pos, size }

// fakeRenderer records submissions for assertions.
type fakeRenderer struct {
	cleared            bool
	decorationsCleared bool
	submittedLayouts   int
	submittedDecor     int
}

func (r *fakeRenderer) Clear()                  { r.cleared = true }
func (r *fakeRenderer) ClearDecorations()        { r.decorationsCleared = true }
func (r *fakeRenderer) SubmitLayout(AnyBox, Layout) { r.submittedLayouts++ }
func (r *fakeRenderer) SubmitDecorations(AnyBox, []Rect, bool) { r.submittedDecor++ }
