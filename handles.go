// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

// TextBoxHandle is an opaque reference to a display-only TextBox record
// owned by a Registry. It is invalidated by RemoveTextBox and by
// RemoveOldNodes; holding onto it past that point is a caller bug.
type TextBoxHandle struct {
	index int
}

// TextEditHandle is an opaque reference to an editable TextEdit record
// owned by a Registry. It is invalidated by RemoveTextEdit and by
// RemoveOldNodes; holding onto it past that point is a caller bug.
type TextEditHandle struct {
	index int
}

// StyleHandle is an opaque reference to a shared style record owned by a
// Registry. After the referenced style is removed, the staleness check
// of every widget still pointing at it compares against the default
// style's version; LayoutEngine.Build still receives the removed handle.
type StyleHandle struct {
	index int
}

// AnyBoxKind distinguishes the two widget kinds a AnyBox may carry.
type AnyBoxKind uint8

const (
	// AnyBoxTextBox marks an AnyBox as wrapping a TextBoxHandle.
	AnyBoxTextBox AnyBoxKind = iota
	// AnyBoxTextEdit marks an AnyBox as wrapping a TextEditHandle.
	AnyBoxTextEdit
)

// AnyBox is a tagged reference to either widget kind, used wherever the
// dispatcher or a hit-test result must carry "whichever kind of box this
// is" without resorting to an interface and virtual dispatch.
type AnyBox struct {
	Kind  AnyBoxKind
	index int
}

// IsTextBox reports whether b wraps a TextBoxHandle.
func (b AnyBox) IsTextBox() bool { return b.Kind == AnyBoxTextBox }

// IsTextEdit reports whether b wraps a TextEditHandle.
func (b AnyBox) IsTextEdit() bool { return b.Kind == AnyBoxTextEdit }

// TextBox returns the wrapped TextBoxHandle and true, or the zero handle
// and false if b wraps a TextEditHandle instead.
func (b AnyBox) TextBox() (TextBoxHandle, bool) {
	if b.Kind != AnyBoxTextBox {
		return TextBoxHandle{}, false
	}
	return TextBoxHandle{index: b.index}, true
}

// TextEdit returns the wrapped TextEditHandle and true, or the zero handle
// and false if b wraps a TextBoxHandle instead.
func (b AnyBox) TextEdit() (TextEditHandle, bool) {
	if b.Kind != AnyBoxTextEdit {
		return TextEditHandle{}, false
	}
	return TextEditHandle{index: b.index}, true
}

func anyBoxFromTextBox(h TextBoxHandle) AnyBox {
	return AnyBox{Kind: AnyBoxTextBox, index: h.index}
}

func anyBoxFromTextEdit(h TextEditHandle) AnyBox {
	return AnyBox{Kind: AnyBoxTextEdit, index: h.index}
}
