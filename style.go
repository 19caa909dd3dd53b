// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

// ColorOverride names the non-default text colors for disabled and
// placeholder text. Nothing in this package passes one on:
// LayoutEngine.Build receives only text, style handle and wrap width, so
// disabled and placeholder text are laid out with the style as is. Style
// content itself (font, size, weight, color) is opaque to textcore and
// owned by the host.
type ColorOverride uint8

const (
	// ColorNormal renders with the style's own color.
	ColorNormal ColorOverride = iota
	// ColorDisabled renders with a dimmed/disabled color.
	ColorDisabled
	// ColorPlaceholder renders with the placeholder color.
	ColorPlaceholder
)

// styleRecord is the registry's bookkeeping for one style handle: only a
// monotonic version, bumped by bumpStyle; the style content is the host's.
// Widgets cache the version they last observed and compare by inequality
// to detect staleness; this is an acknowledged ABA-prone comparison
// carried over unchanged from the layout engine this is modeled on, since
// fixing it would require a wider identity scheme than a style record
// needs in practice.
type styleRecord struct {
	version int
}

// defaultStyleIndex is the slot index of the registry's built-in default
// style, always present at index 0 and never removable.
const defaultStyleIndex = 0

// addStyle inserts a new style record and returns its handle.
func (r *Registry) addStyle() StyleHandle {
	idx := r.styles.add(styleRecord{version: 1})
	return StyleHandle{index: idx}
}

// bumpStyle increments the version of the style at h, marking every
// widget that caches an older version stale.
func (r *Registry) bumpStyle(h StyleHandle) {
	if s := r.styles.get(h.index); s != nil {
		s.version++
	}
}

// styleVersion returns the current version of h, or the default style's
// version if h no longer refers to a live record (mirrors the original's
// fallback-to-default behavior on a missing style).
func (r *Registry) styleVersion(h StyleHandle) int {
	if s := r.styles.get(h.index); s != nil {
		return s.version
	}
	return r.styles.get(defaultStyleIndex).version
}

// DefaultStyle returns the registry's built-in default style handle.
func (r *Registry) DefaultStyle() StyleHandle {
	return StyleHandle{index: defaultStyleIndex}
}

// RemoveStyle removes the style at h. Widgets still referencing it fall
// back to the default style on their next style-version check, per
// styleVersion above; it is never an error to remove a style other
// widgets still hold a handle to.
func (r *Registry) RemoveStyle(h StyleHandle) {
	if h.index == defaultStyleIndex {
		return
	}
	r.styles.remove(h.index)
}
