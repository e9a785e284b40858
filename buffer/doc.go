// Package buffer implements the pure, rune-accurate document model for cim.
//
// The document is a single rune sequence. Lines are the runs between '\n'
// separators; a trailing unterminated line still counts as a line, so an
// empty buffer has exactly one (empty) line.
//
// Offsets are absolute rune indices into the document. Coordinates are
// 0-based (Row, Col) in runes.
package buffer
