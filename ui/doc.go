// Package ui renders an editor.Session as a Bubble Tea program.
package ui
