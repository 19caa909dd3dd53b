// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textcore is the core of a retained-mode text widget system for
// a GPU-accelerated UI. A Registry owns a pool of display-only TextBox
// and editable TextEdit records behind stable handles, dispatches
// mouse/keyboard/IME/touch events to a single focused widget with
// correct hit-testing under z-ordering, maintains a per-edit undo/redo
// history with opportunistic coalescing, tracks IME preedit composition,
// and orchestrates lazy relayout and a frame-based visibility lifecycle.
//
// Text shaping and line breaking are not implemented here: every widget
// carries an opaque Layout built by a host-supplied LayoutEngine, and
// rendering, clipboard access, and window/IME plumbing are all consumed
// through small interfaces (Renderer, Clipboard, Window) rather than
// owned by this package.
package textcore
