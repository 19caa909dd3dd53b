// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

import "unicode"

// maxGrowableSize bounds how large a single coalesced history entry may
// grow before a fresh entry is forced, so one giant paste or one long
// typing run doesn't become a single unbounded undo step.
const maxGrowableSize = 20

// growKindTag discriminates the GrowHint variants.
type growKindTag uint8

const (
	growCannot growKindTag = iota
	growInsert
	growInsertWhitespace
	growDelete
	growDeleteWhitespace
)

// growHint records whether, and how, the next record call may coalesce
// into the most recent history entry instead of starting a new one.
type growHint struct {
	kind growKindTag
	size int
}

// byteRange is a half-open [Start, End) byte range into some buffer.
type byteRange struct {
	Start, End int
}

func (r byteRange) len() int { return r.End - r.Start }

// ranges pairs the range of the live buffer an operation touched with the
// range of the side heap (undo_text or redo_text) holding the text that
// operation displaced.
type ranges struct {
	InsertedRange byteRange // span in the live buffer
	DeletedRange  byteRange // span in the side heap
}

func (r ranges) isDeleteOnly() bool { return r.InsertedRange.len() == 0 }
func (r ranges) isInsertOnly() bool { return r.DeletedRange.len() == 0 }

// recordedOp is one (possibly coalesced) entry in the history list. Redo
// is populated lazily: it stays nil until the matching undo fills it in,
// which is the invariant that makes it safe for redo to assume it is
// always populated by the time it is reached.
type recordedOp struct {
	Undo         ranges
	Redo         *ranges
	PrevSelection Selection
}

// EditHistory is the undo/redo engine for one TextEdit. It records text
// replacements as (old, new, selection-before, inserted-range) tuples and
// can replay them as a pair of byte-range edits against the live buffer,
// coalescing adjacent similar edits into one user-visible undo step.
type EditHistory struct {
	undoText string
	redoText string
	ops      []recordedOp
	position int
	hint     growHint
}

// Len returns the number of recorded (possibly coalesced) history entries.
func (h *EditHistory) Len() int { return len(h.ops) }

// isWhitespaceOrASCIIPunct reports whether every rune in s is either
// whitespace or ASCII punctuation -- the predicate that separates
// "whitespace-category" coalescing from ordinary character coalescing.
func isWhitespaceOrASCIIPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r < 0x80 && unicode.IsPunct(r) {
			continue
		}
		return false
	}
	return true
}

func lastRuneIsWhitespaceOrPunct(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	r := runes[len(runes)-1]
	return unicode.IsSpace(r) || (r < 0x80 && unicode.IsPunct(r))
}

// TextRestore is what Undo/Redo hand back to the caller: the range of the
// live buffer to replace, the text to replace it with, and the selection
// to restore after the replace is applied.
type TextRestore struct {
	RangeToClear  byteRange
	TextToRestore string
	Selection     Selection
}

// record records a replacement of old with new at sel (the selection
// immediately before the edit), where insertedRange is the byte range the
// inserted text now occupies in the live buffer. It attempts to coalesce
// into the previous entry according to the current grow hint before
// falling back to pushing a new entry, and updates the grow hint for the
// next call.
func (h *EditHistory) record(old, new string, sel Selection, insertedRange byteRange) {
	if h.position < len(h.ops) {
		// Recording into a non-tip position: the redo branch is
		// discarded and replaced by this new edit.
		cut := h.ops[h.position].Undo.DeletedRange.Start
		if cut <= len(h.undoText) {
			h.undoText = h.undoText[:cut]
		}
		h.redoText = ""
		h.ops = h.ops[:h.position]
	}

	if h.tryCoalesce(old, new, insertedRange) {
		h.updateGrowHint(old, new)
		return
	}

	deletedStart := len(h.undoText)
	h.undoText += old
	op := recordedOp{
		Undo: ranges{
			InsertedRange: insertedRange,
			DeletedRange:  byteRange{Start: deletedStart, End: deletedStart + len(old)},
		},
		PrevSelection: sel,
	}
	h.ops = append(h.ops, op)
	h.position++
	h.updateGrowHint(old, new)
}

// tryCoalesce attempts to merge (old, new) into the last history entry
// per the current grow hint, returning whether it succeeded.
func (h *EditHistory) tryCoalesce(old, new string, insertedRange byteRange) bool {
	if len(h.ops) == 0 || h.position != len(h.ops) {
		return false
	}
	last := &h.ops[len(h.ops)-1]

	switch h.hint.kind {
	case growInsert:
		if old != "" || h.hint.size >= maxGrowableSize {
			return false
		}
		last.Undo.InsertedRange.End = insertedRange.End
		return true
	case growInsertWhitespace:
		if old != "" || !isWhitespaceOrASCIIPunct(new) || h.hint.size >= maxGrowableSize {
			return false
		}
		last.Undo.InsertedRange.End = insertedRange.End
		return true
	case growDelete:
		if new != "" || h.hint.size >= maxGrowableSize {
			return false
		}
		h.mergeDelete(last, old, insertedRange)
		return true
	case growDeleteWhitespace:
		if new != "" || !isWhitespaceOrASCIIPunct(old) || h.hint.size >= maxGrowableSize {
			return false
		}
		h.mergeDelete(last, old, insertedRange)
		return true
	default:
		return false
	}
}

// mergeDelete merges a new backward delete into the last op by prepending
// old to undoText at the last op's deleted-range start, shifting every
// later deleted-range reference right by len(old).
func (h *EditHistory) mergeDelete(last *recordedOp, old string, insertedRange byteRange) {
	at := last.Undo.DeletedRange.Start
	h.undoText = h.undoText[:at] + old + h.undoText[at:]
	shift := len(old)
	last.Undo.DeletedRange.End += shift
	last.Undo.InsertedRange = insertedRange
}

// updateGrowHint inspects the op just recorded and sets the hint that
// governs whether the *next* record call may coalesce into it.
func (h *EditHistory) updateGrowHint(old, new string) {
	if len(h.ops) == 0 {
		h.hint = growHint{kind: growCannot}
		return
	}
	last := h.ops[len(h.ops)-1]
	switch {
	case last.Undo.isInsertOnly():
		size := last.Undo.InsertedRange.len()
		if lastRuneIsWhitespaceOrPunct(new) {
			h.hint = growHint{kind: growInsertWhitespace, size: size}
		} else {
			h.hint = growHint{kind: growInsert, size: size}
		}
	case last.Undo.isDeleteOnly():
		size := last.Undo.DeletedRange.len()
		if lastRuneIsWhitespaceOrPunct(old) {
			h.hint = growHint{kind: growDeleteWhitespace, size: size}
		} else {
			h.hint = growHint{kind: growDelete, size: size}
		}
	default:
		h.hint = growHint{kind: growCannot}
	}
}

// undo moves current_position back by one and returns the edit to apply
// to reverse it, lazily populating that entry's redo range from the live
// buffer's about-to-be-cleared text.
func (h *EditHistory) undo(liveBufferRange func(r byteRange) string) (TextRestore, bool) {
	if h.position <= 0 {
		return TextRestore{}, false
	}
	h.position--
	op := &h.ops[h.position]

	rangeToClear := op.Undo.InsertedRange
	textToRestore := h.undoText[op.Undo.DeletedRange.Start:op.Undo.DeletedRange.End]

	if op.Redo == nil {
		clearedText := liveBufferRange(rangeToClear)
		start := len(h.redoText)
		h.redoText += clearedText
		op.Redo = &ranges{
			InsertedRange: byteRange{Start: rangeToClear.Start, End: rangeToClear.Start + op.Undo.DeletedRange.len()},
			DeletedRange:  byteRange{Start: start, End: start + len(clearedText)},
		}
	}

	return TextRestore{
		RangeToClear:  rangeToClear,
		TextToRestore: textToRestore,
		Selection:     op.PrevSelection,
	}, true
}

// redo moves current_position forward by one and returns the edit to
// re-apply. It is only ever called at a position whose redo range was
// populated by a prior undo, so op.Redo is guaranteed non-nil by
// construction.
func (h *EditHistory) redo() (TextRestore, bool) {
	if h.position >= len(h.ops) {
		return TextRestore{}, false
	}
	op := &h.ops[h.position]
	if op.Redo == nil {
		return TextRestore{}, false
	}
	rangeToClear := op.Redo.InsertedRange
	textToRestore := h.redoText[op.Redo.DeletedRange.Start:op.Redo.DeletedRange.End]
	h.position++

	insertedEnd := rangeToClear.Start + len(textToRestore)
	sel := collapsedAt(insertedEnd, Upstream)

	return TextRestore{
		RangeToClear:  rangeToClear,
		TextToRestore: textToRestore,
		Selection:     sel,
	}, true
}

// reset discards all recorded history, used by set_text's explicit
// bypass-history override.
func (h *EditHistory) reset() {
	*h = EditHistory{}
}
