// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

// xHitTolerance widens a display-only TextBox's hit-test rectangle along
// the x axis, so narrow or single-character labels remain easy to click.
const xHitTolerance = 35

// TextBox is the base, display-only widget record: an owned string, a
// style reference, a cached layout, and the selection/visibility state
// shared with TextEdit. It is selectable (the user can click-drag to
// highlight its text and copy it) but never editable.
type TextBox struct {
	selectionState

	text       string
	style      StyleHandle
	styleID    int
	selectable bool

	left, top            float64
	width, height        float32
	depth                float32
	maxAdvance           float32
	clipRect             *Rect
	autoClip             bool
	fadeoutClipping      bool

	hidden            bool
	canHide           bool
	lastFrameTouched  uint64

	layout        Layout
	needsRelayout bool

	scrollOffset float32
}

// newTextBox builds a TextBox in its default state: selectable, visible,
// needing its first layout.
func newTextBox(text string, style StyleHandle) *TextBox {
	return &TextBox{
		text:          text,
		style:         style,
		selectable:    true,
		needsRelayout: true,
	}
}

// Text returns the box's backing string.
func (b *TextBox) Text() string { return b.text }

// Pos returns the box's top-left position.
func (b *TextBox) Pos() (left, top float64) { return b.left, b.top }

// SetPos moves the box.
func (b *TextBox) SetPos(left, top float64) { b.left, b.top = left, top }

// Depth returns the box's z-order depth (lower is frontmost).
func (b *TextBox) Depth() float32 { return b.depth }

// SetDepth sets the box's z-order depth.
func (b *TextBox) SetDepth(depth float32) { b.depth = depth }

// Selectable reports whether the box currently accepts focus and
// selection gestures.
func (b *TextBox) Selectable() bool { return b.selectable }

// SetSelectable toggles whether the box accepts focus and selection
// gestures. Disabling selectability on a currently-selected box does not
// itself drop the selection; the registry clears focus on the next event
// it routes to this box, consistent with the dispatcher-level focus-drop
// contract used for disabled TextEdits.
func (b *TextBox) SetSelectable(v bool) { b.selectable = v }

// Selection returns the box's current selection.
func (b *TextBox) Selection() Selection { return b.selection }

// SelectionGeometry returns the decoration rectangles for the box's
// current selection, or nil if no layout is available yet.
func (b *TextBox) SelectionGeometry() []Rect {
	return b.SelectionGeometryWith(b.selection)
}

// SelectionGeometryWith returns the decoration rectangles for an
// arbitrary selection against this box's layout, or nil if no layout is
// available yet.
func (b *TextBox) SelectionGeometryWith(sel Selection) []Rect {
	if b.layout == nil {
		return nil
	}
	return b.layout.Geometry(sel)
}

// hitFullRect tests p against the box's full declared rectangle --
// used for editable widgets, which should be clickable across their
// whole box even where no glyph was painted.
func (b *TextBox) hitFullRect(p Point) bool {
	r := Rect{Pos: Point{X: float32(b.left), Y: float32(b.top)}, Size: Size{Width: b.width, Height: b.height}}
	return r.Contains(p, 0)
}

// hitBoundingBox tests p against the laid-out glyph bounding box with a
// small x tolerance -- used for display-only widgets, whose declared box
// may be larger or smaller than what was actually painted.
func (b *TextBox) hitBoundingBox(p Point) bool {
	if b.layout == nil {
		return false
	}
	local := Point{X: p.X - float32(b.left), Y: p.Y - float32(b.top)}
	return b.layout.HitBoundingBox(local, xHitTolerance)
}

// localPoint converts a registry-space point into this box's local
// layout coordinates.
func (b *TextBox) localPoint(p Point) Point {
	return Point{X: p.X - float32(b.left), Y: p.Y - float32(b.top)}
}

// handleEventNoEditInner implements the selectable-but-not-editable event
// path shared by TextBox and, before its own editable handling runs, by
// TextEdit. It reports whether the box should keep focus after this
// event (false means the caller should drop focus from this widget).
func (b *TextBox) handleEventNoEditInner(evt Event, clickCount int, focused bool, clip Clipboard) (keepFocus bool, changed bool) {
	if !b.selectable {
		return false, false
	}
	if b.layout == nil {
		return focused, false
	}
	switch evt.Kind {
	case EventMouseInput:
		if evt.MouseButton != MouseButtonLeft {
			return focused, false
		}
		if evt.MouseState == Pressed {
			p := b.localPoint(evt.Position)
			if !b.layout.HitBoundingBox(p, xHitTolerance) {
				if focused {
					b.reset()
					return false, true
				}
				return focused, false
			}
			b.pointerDown = true
			if evt.Modifiers.Has(ModShift) {
				b.extendSelectionWithAnchor(b.layout, p, clickCount)
			} else {
				switch clickCount % 4 {
				case 2:
					b.selectWordAtPoint(b.layout, p)
				case 3, 0:
					b.selectLineAtPoint(b.layout, p)
				default:
					b.moveToPoint(b.layout, p)
				}
			}
			return true, true
		}
		b.pointerDown = false
		return focused, false

	case EventCursorMoved:
		if !b.pointerDown || !focused {
			return focused, false
		}
		p := b.localPoint(evt.Position)
		b.extendSelectionToPoint(b.layout, p, clickCount)
		return true, true

	case EventKeyboardInput:
		if !focused || evt.KeyState != Pressed {
			return focused, false
		}
		if evt.Modifiers.Has(ActionModifier()) {
			switch evt.Key {
			case KeyC:
				if !b.selection.Collapsed() {
					start, end := b.selection.TextRange()
					if clip != nil {
						clip.SetText(b.text[start:end])
					}
				}
				return true, false
			case KeyA:
				b.setSelection(Selection{
					Anchor: collapsedAt(0, Upstream).Anchor,
					Focus:  collapsedAt(len(b.text), Downstream).Anchor,
				})
				return true, true
			}
			return focused, false
		}
		return b.handleNavigationKey(evt), true

	default:
		return focused, false
	}
}

// handleNavigationKey handles the shift+arrows/Home/End selection
// extension shared by the non-editing path.
func (b *TextBox) handleNavigationKey(evt Event) bool {
	if !evt.Modifiers.Has(ModShift) || b.layout == nil {
		return true
	}
	focus := b.selection.Focus
	word := evt.Modifiers.Has(ActionModifier())
	switch evt.Key {
	case KeyArrowLeft:
		if word {
			focus = b.layout.PreviousVisualWord(focus)
		} else {
			focus = b.layout.PreviousVisual(focus)
		}
	case KeyArrowRight:
		if word {
			focus = b.layout.NextVisualWord(focus)
		} else {
			focus = b.layout.NextVisual(focus)
		}
	case KeyHome:
		if word {
			focus = Cursor{Index: 0, Affinity: Upstream}
		} else {
			focus = b.layout.LineStart(focus)
		}
	case KeyEnd:
		if word {
			focus = Cursor{Index: len(b.text), Affinity: Downstream}
		} else {
			focus = b.layout.LineEnd(focus)
		}
	default:
		return true
	}
	b.selection.Focus = focus
	return true
}
