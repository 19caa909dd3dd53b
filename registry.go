// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

import (
	"math"
	"time"
)

// multiclickDelay is the maximum gap between two left-presses for the
// second to count as a continuation of a multi-click run.
const multiclickDelay = 400 * time.Millisecond

// multiclickToleranceSquared is the maximum squared pixel distance
// between two left-presses for the second to count as a continuation of
// a multi-click run.
const multiclickToleranceSquared = 26

// Renderer is the GPU text renderer textcore submits laid-out widgets and
// decorations to; it is an external collaborator described only by the
// calls prepare needs to make on it.
type Renderer interface {
	// Clear discards everything previously submitted (a full re-upload).
	Clear()
	// ClearDecorations discards only caret/selection decorations.
	ClearDecorations()
	// SubmitLayout uploads the laid-out glyphs of one widget.
	SubmitLayout(box AnyBox, layout Layout)
	// SubmitDecorations uploads caret/selection rectangles for one
	// widget; editable distinguishes a blinking caret from a plain
	// selection highlight.
	SubmitDecorations(box AnyBox, rects []Rect, editable bool)
}

// Registry is the central text-widget registry and event dispatcher: it
// owns every TextBox, TextEdit, and style record behind stable handles,
// tracks the single focused widget, performs hit-testing and multi-click
// counting, and drives the per-frame visibility lifecycle.
type Registry struct {
	boxes  slotStore[TextBox]
	edits  slotStore[TextEdit]
	styles slotStore[styleRecord]

	engine LayoutEngine

	modifiers   Modifiers
	cursorPos   Point
	pointerDown bool

	lastClickTime    time.Time
	lastClickPos     Point
	lastClickFocused *AnyBox
	clickCount       int

	focused *AnyBox

	currentFrame          uint64
	frameVisibilityActive bool

	textChanged        bool
	decorationsChanged bool
}

// NewRegistry builds an empty Registry backed by engine, with a single
// default style already registered at DefaultStyle's handle.
func NewRegistry(engine LayoutEngine) *Registry {
	r := &Registry{engine: engine}
	r.styles.add(styleRecord{version: 1})
	return r
}

// AddTextBox creates a display-only widget and returns its handle. The
// new widget is stamped as touched this frame so it is immediately
// eligible for hit-testing.
func (r *Registry) AddTextBox(text string, style StyleHandle) TextBoxHandle {
	b := newTextBox(text, style)
	b.lastFrameTouched = r.currentFrame
	idx := r.boxes.add(*b)
	return TextBoxHandle{index: idx}
}

// AddTextEdit creates an editable widget and returns its handle.
func (r *Registry) AddTextEdit(text string, style StyleHandle) TextEditHandle {
	e := newTextEdit(text, style)
	e.lastFrameTouched = r.currentFrame
	idx := r.edits.add(*e)
	return TextEditHandle{index: idx}
}

// AddStyle registers a new style record and returns its handle.
func (r *Registry) AddStyle() StyleHandle { return r.addStyle() }

// GetTextBox returns the live record at h. Panics if h is stale or was
// never issued by this registry.
func (r *Registry) GetTextBox(h TextBoxHandle) *TextBox { return r.boxes.mustGet(h.index) }

// GetTextBoxMut returns the live record at h for mutation, marking the
// registry's text as changed. Panics if h is stale.
func (r *Registry) GetTextBoxMut(h TextBoxHandle) *TextBox {
	b := r.boxes.mustGet(h.index)
	r.textChanged = true
	return b
}

// GetTextEdit returns the live record at h. Panics if h is stale or was
// never issued by this registry.
func (r *Registry) GetTextEdit(h TextEditHandle) *TextEdit { return r.edits.mustGet(h.index) }

// GetTextEditMut returns the live record at h for mutation, marking the
// registry's text as changed. Panics if h is stale.
func (r *Registry) GetTextEditMut(h TextEditHandle) *TextEdit {
	e := r.edits.mustGet(h.index)
	r.textChanged = true
	return e
}

// GetTextBoxLayout returns the current layout of the box at h, or nil.
func (r *Registry) GetTextBoxLayout(h TextBoxHandle) Layout {
	b := r.boxes.get(h.index)
	if b == nil {
		return nil
	}
	return b.layout
}

// GetTextEditLayout returns the current layout of the edit at h, or nil.
func (r *Registry) GetTextEditLayout(h TextEditHandle) Layout {
	e := r.edits.get(h.index)
	if e == nil {
		return nil
	}
	return e.layout
}

// RemoveTextBox consumes h, removing its record. If it was focused, focus
// is cleared.
func (r *Registry) RemoveTextBox(h TextBoxHandle) {
	if _, ok := r.boxes.remove(h.index); ok {
		r.clearFocusIf(anyBoxFromTextBox(h))
	}
}

// RemoveTextEdit consumes h, removing its record. If it was focused,
// focus is cleared.
func (r *Registry) RemoveTextEdit(h TextEditHandle) {
	if _, ok := r.edits.remove(h.index); ok {
		r.clearFocusIf(anyBoxFromTextEdit(h))
	}
}

func (r *Registry) clearFocusIf(b AnyBox) {
	if r.focused != nil && r.focused.Kind == b.Kind && r.focused.index == b.index {
		r.removeFocus()
	}
}

// SetTextEditDisabled sets disabled on the edit at h, clearing selection
// and focus first if it is the widget currently focused -- the
// focus-aware counterpart to (*TextEdit).SetDisabled.
func (r *Registry) SetTextEditDisabled(h TextEditHandle, disabled bool) {
	e := r.edits.get(h.index)
	if e == nil {
		return
	}
	if disabled && r.focused != nil && r.focused.Kind == AnyBoxTextEdit && r.focused.index == h.index {
		e.reset()
		r.removeFocus()
	}
	e.disabled = disabled
}

// GetTextChanged reports whether any event since the last prepare call
// requires the renderer to re-upload.
func (r *Registry) GetTextChanged() bool { return r.textChanged }

// AdvanceFrameAndHideBoxes begins a new frame: every widget is implicitly
// considered hidden until refreshed by RefreshTextBox/RefreshTextEdit.
func (r *Registry) AdvanceFrameAndHideBoxes() {
	r.currentFrame++
	r.frameVisibilityActive = true
}

// RefreshTextBox marks the box at h as touched this frame, keeping it
// visible. A stale handle is tolerated silently.
func (r *Registry) RefreshTextBox(h TextBoxHandle) {
	if b := r.boxes.get(h.index); b != nil {
		b.lastFrameTouched = r.currentFrame
	}
}

// RefreshTextEdit marks the edit at h as touched this frame, keeping it
// visible. A stale handle is tolerated silently.
func (r *Registry) RefreshTextEdit(h TextEditHandle) {
	if e := r.edits.get(h.index); e != nil {
		e.lastFrameTouched = r.currentFrame
	}
}

// RemoveOldNodes is the one operation allowed to invalidate live handles
// without the caller consuming them: every widget not touched this frame
// and not marked can_hide is removed. Handles to such widgets become
// unreliable the instant this returns. Focus is cleared first if the
// focused widget would be destroyed, per the focus-never-persists
// invariant.
func (r *Registry) RemoveOldNodes() {
	shouldRemove := func(hidden bool, canHide bool, lastTouched uint64) bool {
		return lastTouched != r.currentFrame && !canHide
	}

	if r.focused != nil {
		var dying bool
		switch r.focused.Kind {
		case AnyBoxTextBox:
			if b := r.boxes.get(r.focused.index); b != nil {
				dying = shouldRemove(b.hidden, b.canHide, b.lastFrameTouched)
			}
		case AnyBoxTextEdit:
			if e := r.edits.get(r.focused.index); e != nil {
				dying = shouldRemove(e.hidden, e.canHide, e.lastFrameTouched)
			}
		}
		if dying {
			r.removeFocus()
		}
	}

	r.boxes.removeWhere(func(_ int, b *TextBox) bool {
		return shouldRemove(b.hidden, b.canHide, b.lastFrameTouched)
	}, nil)
	r.edits.removeWhere(func(_ int, e *TextEdit) bool {
		return shouldRemove(e.hidden, e.canHide, e.lastFrameTouched)
	}, nil)
}

// GetTextBoxDepth returns the depth of the box or edit wrapped by b, or
// +Inf-equivalent if it no longer refers to a live record, so host
// occlusion code can treat a stale handle as "infinitely far back"
// instead of panicking.
func (r *Registry) GetTextBoxDepth(b AnyBox) float32 {
	switch b.Kind {
	case AnyBoxTextBox:
		if bx := r.boxes.get(b.index); bx != nil {
			return bx.depth
		}
	case AnyBoxTextEdit:
		if e := r.edits.get(b.index); e != nil {
			return e.depth
		}
	}
	return float32(math.MaxFloat32)
}

// removeFocus clears the currently focused widget, if any, collapsing
// its selection and hiding its cursor first.
func (r *Registry) removeFocus() {
	if r.focused == nil {
		return
	}
	switch r.focused.Kind {
	case AnyBoxTextBox:
		if b := r.boxes.get(r.focused.index); b != nil {
			b.reset()
		}
	case AnyBoxTextEdit:
		if e := r.edits.get(r.focused.index); e != nil {
			e.reset()
			e.showCursor = false
		}
	}
	r.focused = nil
	r.decorationsChanged = true
}

// refocus assigns focus to b, first clearing any previous focus exactly
// as removeFocus would.
func (r *Registry) refocus(b AnyBox) {
	if r.focused != nil && r.focused.Kind == b.Kind && r.focused.index == b.index {
		return
	}
	r.removeFocus()
	r.focused = &b
	r.decorationsChanged = true
}

// Focused returns the currently focused widget, if any.
func (r *Registry) Focused() (AnyBox, bool) {
	if r.focused == nil {
		return AnyBox{}, false
	}
	return *r.focused, true
}

// handleClickCounting updates the multi-click run on a left-press at p
// against the widget hit (if any), per the 400ms/26px²/unchanged-focus
// rule.
func (r *Registry) handleClickCounting(p Point, hit *AnyBox, now time.Time) {
	dx := p.X - r.lastClickPos.X
	dy := p.Y - r.lastClickPos.Y
	sameTarget := (r.lastClickFocused == nil) == (hit == nil)
	if sameTarget && hit != nil && r.lastClickFocused != nil {
		sameTarget = hit.Kind == r.lastClickFocused.Kind && hit.index == r.lastClickFocused.index
	}
	within := !r.lastClickTime.IsZero() && now.Sub(r.lastClickTime) <= multiclickDelay &&
		dx*dx+dy*dy <= multiclickToleranceSquared && sameTarget

	if within {
		r.clickCount = r.clickCount%4 + 1
	} else {
		r.clickCount = 1
	}
	r.lastClickTime = now
	r.lastClickPos = p
	if hit != nil {
		cp := *hit
		r.lastClickFocused = &cp
	} else {
		r.lastClickFocused = nil
	}
}

// hitTest finds the frontmost (smallest depth) non-hidden widget touched
// this frame whose rectangle covers p, editable widgets tested against
// their full box and display-only widgets against their laid-out glyph
// bounds with the usual x tolerance.
func (r *Registry) hitTest(p Point) (AnyBox, bool) {
	var best *AnyBox
	bestDepth := float32(math.MaxFloat32)

	r.edits.each(func(idx int, e *TextEdit) {
		if e.hidden || e.lastFrameTouched != r.currentFrame || !e.selectable {
			return
		}
		if e.hitFullRect(p) && e.depth < bestDepth {
			b := anyBoxFromTextEdit(TextEditHandle{index: idx})
			best = &b
			bestDepth = e.depth
		}
	})
	r.boxes.each(func(idx int, b *TextBox) {
		if b.hidden || b.lastFrameTouched != r.currentFrame || !b.selectable {
			return
		}
		if b.hitBoundingBox(p) && b.depth < bestDepth {
			ab := anyBoxFromTextBox(TextBoxHandle{index: idx})
			best = &ab
			bestDepth = b.depth
		}
	})
	if best == nil {
		return AnyBox{}, false
	}
	return *best, true
}

// FindTopmostTextBox performs the same hit test HandleEvent would use
// internally, without mutating any state, so a host with non-text
// occluders can compare this candidate's depth against its own and
// decide who actually owns the click before calling
// HandleEventWithTopmost.
func (r *Registry) FindTopmostTextBox(evt Event) (AnyBox, bool) {
	if evt.Kind != EventMouseInput || evt.MouseState != Pressed || evt.MouseButton != MouseButtonLeft {
		return AnyBox{}, false
	}
	return r.hitTest(r.cursorPos)
}

// HandleEvent dispatches evt to the focused widget, performing hit
// testing internally on left-press to elect a new focus. Use this when
// there is no need to arbitrate against non-text occluders; otherwise
// use FindTopmostTextBox + HandleEventWithTopmost, which MUST both be
// called on every event for correct defocus-on-occlusion behavior.
func (r *Registry) HandleEvent(evt Event, window Window, clip Clipboard) TextEventResult {
	var topmost *AnyBox
	if evt.Kind == EventMouseInput && evt.MouseState == Pressed && evt.MouseButton == MouseButtonLeft {
		if b, ok := r.hitTest(r.cursorPos); ok {
			topmost = &b
		}
	}
	return r.handleEventWithTopmostInner(evt, window, clip, topmost)
}

// HandleEventWithTopmost dispatches evt to the focused widget, using
// topmost (computed by a prior call to FindTopmostTextBox and possibly
// overridden by the host's own occlusion logic) instead of an internally
// computed hit test. Both this and FindTopmostTextBox must be called for
// every event, including when topmost is nil, because that is how a
// widget loses focus to a non-text occluder.
func (r *Registry) HandleEventWithTopmost(evt Event, window Window, clip Clipboard, topmost *AnyBox) TextEventResult {
	return r.handleEventWithTopmostInner(evt, window, clip, topmost)
}

func (r *Registry) handleEventWithTopmostInner(evt Event, window Window, clip Clipboard, topmost *AnyBox) TextEventResult {
	r.applyInputState(evt)

	isLeftPress := evt.Kind == EventMouseInput && evt.MouseState == Pressed && evt.MouseButton == MouseButtonLeft
	if isLeftPress {
		r.handleClickCounting(r.cursorPos, topmost, time.Now())
		if topmost != nil {
			r.refocus(*topmost)
		} else {
			r.removeFocus()
		}
	}

	result := r.handleFocusedEvent(evt, window, clip)
	if result.TextChanged {
		r.textChanged = true
	}
	if result.DecorationsChanged {
		r.decorationsChanged = true
	}
	return result
}

// applyInputState updates the modifier/cursor-position tracking every
// event carries regardless of its kind.
func (r *Registry) applyInputState(evt Event) {
	switch evt.Kind {
	case EventModifiersChanged:
		r.modifiers = evt.Modifiers
	case EventCursorMoved:
		r.cursorPos = evt.Position
	case EventMouseInput:
		if evt.MouseButton == MouseButtonLeft {
			r.pointerDown = evt.MouseState == Pressed
		}
	}
}

// handleFocusedEvent routes evt to whichever widget is currently
// focused, if any.
func (r *Registry) handleFocusedEvent(evt Event, window Window, clip Clipboard) TextEventResult {
	if r.focused == nil {
		return TextEventResult{}
	}
	if evt.Kind == EventMouseInput {
		evt.Position = r.cursorPos
	}
	switch r.focused.Kind {
	case AnyBoxTextEdit:
		e := r.edits.get(r.focused.index)
		if e == nil {
			r.focused = nil
			return TextEventResult{}
		}
		keep, result := e.handleEvent(evt, window, clip, true, r.clickCount)
		if !keep {
			r.removeFocus()
		}
		return result
	case AnyBoxTextBox:
		b := r.boxes.get(r.focused.index)
		if b == nil {
			r.focused = nil
			return TextEventResult{}
		}
		keep, changed := b.handleEventNoEditInner(evt, r.clickCount, true, clip)
		if !keep {
			r.removeFocus()
		}
		return TextEventResult{DecorationsChanged: changed}
	}
	return TextEventResult{}
}

// refreshBoxLayout rebuilds the layout of a single widget if it is
// stale, i.e. needs_relayout or its cached style version has drifted
// from the style's current version.
func (r *Registry) refreshBoxLayout(b *TextBox) {
	stale := b.needsRelayout || b.styleID != r.styleVersion(b.style)
	if !stale {
		return
	}
	b.layout = r.engine.Build(b.text, b.style, b.maxAdvance)
	b.needsRelayout = false
	b.styleID = r.styleVersion(b.style)
}

func (r *Registry) refreshEditLayout(e *TextEdit) {
	stale := e.needsRelayout || e.styleID != r.styleVersion(e.style)
	if !stale {
		return
	}
	e.layout = r.engine.Build(e.text, e.style, e.maxAdvance)
	e.needsRelayout = false
	e.styleID = r.styleVersion(e.style)
	if e.updateScrollToCursor() {
		r.textChanged = true
	}
}

// Prepare runs the per-frame pipeline: promote just-hidden widgets to a
// text-changed re-upload, clear the renderer (fully or just decorations),
// refresh and submit every visible widget's layout, submit the focused
// widget's decorations, and reset both dirty flags plus the frame's
// visibility mode.
func (r *Registry) Prepare(renderer Renderer) {
	if r.frameVisibilityActive && !r.textChanged {
		promote := false
		r.boxes.each(func(_ int, b *TextBox) {
			if b.lastFrameTouched == r.currentFrame-1 {
				promote = true
			}
		})
		r.edits.each(func(_ int, e *TextEdit) {
			if e.lastFrameTouched == r.currentFrame-1 {
				promote = true
			}
		})
		if promote {
			r.textChanged = true
		}
	}

	if r.textChanged {
		renderer.Clear()
	} else if r.decorationsChanged {
		renderer.ClearDecorations()
	}

	if r.textChanged {
		r.boxes.each(func(idx int, b *TextBox) {
			if b.hidden || b.lastFrameTouched != r.currentFrame {
				return
			}
			r.refreshBoxLayout(b)
			renderer.SubmitLayout(anyBoxFromTextBox(TextBoxHandle{index: idx}), b.layout)
		})
		r.edits.each(func(idx int, e *TextEdit) {
			if e.hidden || e.lastFrameTouched != r.currentFrame {
				return
			}
			r.refreshEditLayout(e)
			renderer.SubmitLayout(anyBoxFromTextEdit(TextEditHandle{index: idx}), e.layout)
		})
	}

	if (r.textChanged || r.decorationsChanged) && r.focused != nil {
		switch r.focused.Kind {
		case AnyBoxTextBox:
			if b := r.boxes.get(r.focused.index); b != nil && b.layout != nil {
				renderer.SubmitDecorations(*r.focused, b.SelectionGeometry(), false)
			}
		case AnyBoxTextEdit:
			if e := r.edits.get(r.focused.index); e != nil && e.layout != nil {
				renderer.SubmitDecorations(*r.focused, e.CursorGeometry(), true)
			}
		}
	}

	r.textChanged = false
	r.decorationsChanged = false
	r.frameVisibilityActive = false
}
