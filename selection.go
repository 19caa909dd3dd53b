// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

// selectionState is the selection-related fields shared by every widget
// kind: the live selection, the anchor snapshot used to extend a
// shift-click drag without losing the original anchor, and whether the
// pointer is currently held down over this widget.
type selectionState struct {
	selection   Selection
	prevAnchor  *Selection
	pointerDown bool
}

// reset collapses the selection to its anchor and clears the shift-click
// anchor snapshot, returning the widget to a plain-caret state.
func (s *selectionState) reset() {
	s.selection = collapsedAt(s.selection.Anchor.Index, s.selection.Anchor.Affinity)
	s.prevAnchor = nil
}

// setSelection replaces the current selection outright and clears the
// shift-click anchor snapshot; used for plain clicks, drags, and
// programmatic moves that are not extending a previous anchor.
func (s *selectionState) setSelection(sel Selection) {
	s.selection = sel
	s.prevAnchor = nil
}

// setSelectionWithOldAnchor replaces the selection for a shift-click
// extension: the first shift-click in a run snapshots the current
// selection as the anchor to extend from; subsequent shift-clicks keep
// using that same snapshot instead of re-anchoring at the live focus.
func (s *selectionState) setSelectionWithOldAnchor(newFocus Cursor) {
	if s.prevAnchor == nil {
		snap := s.selection
		s.prevAnchor = &snap
	}
	s.selection = Selection{Anchor: s.prevAnchor.Anchor, Focus: newFocus}
}

// moveToPoint collapses the selection to the point under p (a plain,
// single-click caret placement).
func (s *selectionState) moveToPoint(layout Layout, p Point) {
	s.setSelection(layout.SelectionFromPoint(p))
}

// selectWordAtPoint selects the word under p (a double click).
func (s *selectionState) selectWordAtPoint(layout Layout, p Point) {
	s.setSelection(layout.WordFromPoint(p))
}

// selectLineAtPoint selects the visual line under p (a triple click).
func (s *selectionState) selectLineAtPoint(layout Layout, p Point) {
	s.setSelection(layout.LineFromPoint(p))
}

// extendSelectionToPoint extends the live selection's focus to p while
// dragging, honoring the multi-click granularity established when the
// drag began: 1 = character, 2 = word, 3 = line (mod-4 count, 0 treated
// as 3). clickCount selects which of the three point-to-selection
// queries to re-run as the drag moves, rather than collapsing to a plain
// point each time.
func (s *selectionState) extendSelectionToPoint(layout Layout, p Point, clickCount int) {
	switch clickCount % 4 {
	case 2:
		word := layout.WordFromPoint(p)
		s.selection = Selection{Anchor: s.selection.Anchor, Focus: word.Focus}
	case 3, 0:
		line := layout.LineFromPoint(p)
		s.selection = Selection{Anchor: s.selection.Anchor, Focus: line.Focus}
	default:
		s.selection = layout.ExtendToPoint(s.selection, p)
	}
}

// extendSelectionWithAnchor performs the shift-click path: extend from
// the remembered anchor (see setSelectionWithOldAnchor) to the point
// under p, using the same click-count granularity as a drag.
func (s *selectionState) extendSelectionWithAnchor(layout Layout, p Point, clickCount int) {
	target := layout.SelectionFromPoint(p)
	switch clickCount % 4 {
	case 2:
		target = layout.WordFromPoint(p)
	case 3, 0:
		target = layout.LineFromPoint(p)
	}
	s.setSelectionWithOldAnchor(target.Focus)
}
