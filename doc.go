/*
Package filebrowser provides an embedded file/directory browser dialog
for immediate-mode GUIs, designed as idiomatic Go with a headless core.

# Overview

The dialog is rebuilt every frame, immediate-mode style: the host's
render loop calls Render once per frame, and the dialog reads the
filesystem, emits its controls through a Surface, and reports a
selection directly. There are no callbacks and no retained widget
tree. The dialog never mutates the process working directory; its
browsing cursor is instance-local, so multiple dialogs coexist safely.

# Quick Start

	dlg := filebrowser.New(
	    filebrowser.WithTitle("Open Project"),
	    filebrowser.WithAcceptText("Open"),
	)
	surface := imgui.New() // backend/imgui Surface adapter

	// Render loop
	for running {
	    if path, ok := dlg.Render(surface); ok {
	        // user picked path; stop calling Render
	    }
	    if dlg.Dismissed() {
	        // user hit cancel
	    }
	}

# Layout

Render emits three regions per frame:

	path      Breadcrumb buttons, one per component of the current
	          directory. Clicking one navigates to that ancestor.
	entries   One button per visible entry, directories first, each
	          group sorted by path. "[dir]" entries navigate,
	          "[file]" entries select (Open mode) or fill the
	          filename buffer (Save mode).
	controls  Back, the filename buffer (Save mode), the accept and
	          cancel controls, and the "Hidden Files" toggle.

# Error handling

Filesystem failures never abort a frame. A failed navigation leaves
the current directory unchanged; a failed listing renders an inline
notice instead of the entry list. Every failure is written to the
configured logger and typed into Dialog.LastError so hosts can tell an
empty directory from an unreadable one.

# Front-ends

Package backend/imgui adapts Surface to Dear ImGui via cimgui-go.
Package tui presents the same browsing semantics as a bubbletea
terminal UI on top of the same listing engine.
*/
package filebrowser
