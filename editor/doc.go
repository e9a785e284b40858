// Package editor is the modal editing engine.
//
// A Session owns a buffer.Buffer together with the cursor, viewport, mode
// and command line that act on it. Hosts feed keys through Session.HandleKey
// (or Dispatch + Session.Apply), then read Session.Snapshot to render.
//
// All state changes are synchronous: one key is fully applied before the
// next is handled.
package editor
