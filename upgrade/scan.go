// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upgrade

const (
	commentMarker = ';'
	quote         = '"'
	backslash     = '\\'
)

// A State is the lexical state of a position on a source line.
type State int

const (
	Code      State = iota // plain code
	InString               // inside a string literal
	InComment              // at or after the comment marker
)

func (s State) String() string {
	switch s {
	case Code:
		return "code"
	case InString:
		return "string"
	case InComment:
		return "comment"
	}
	return "State(?)"
}

// A Scanner walks a single source line from left to right, tracking
// whether each byte is in plain code, inside a string literal, or in
// a comment, without parsing the line.
//
// A quote opens or closes a string unless it is escaped, meaning it is
// preceded by an odd number of consecutive backslashes. A position is
// inside a string when an odd number of unescaped quotes precede it, so
// second and later literals on a line are tracked like the first.
//
// The comment marker ends the scan, even inside a string literal:
// nothing at or after it is ever eligible for rewriting.
type Scanner struct {
	line    string
	pos     int
	state   State
	quotes  int // unescaped quotes before pos
	slashes int // length of the backslash run ending just before pos
}

// NewScanner returns a Scanner positioned before the first byte of line.
func NewScanner(line string) *Scanner {
	return &Scanner{line: line, pos: -1}
}

// Scan advances to the next byte of the line. It returns false at the
// end of the line or when the next byte is the comment marker; after
// that the scanner stays in its final state.
func (s *Scanner) Scan() bool {
	if s.state == InComment || s.pos >= len(s.line) {
		return false
	}
	if s.pos >= 0 {
		s.consume(s.line[s.pos])
	}
	s.pos++
	if s.pos >= len(s.line) {
		return false
	}
	if s.line[s.pos] == commentMarker {
		s.state = InComment
		return false
	}
	if s.quotes%2 == 1 {
		s.state = InString
	} else {
		s.state = Code
	}
	return true
}

// consume folds the byte c, which precedes the new position, into the
// quote and backslash counts.
func (s *Scanner) consume(c byte) {
	switch c {
	case quote:
		if s.slashes%2 == 0 {
			s.quotes++
		}
		s.slashes = 0
	case backslash:
		s.slashes++
	default:
		s.slashes = 0
	}
}

// Pos returns the offset of the current byte.
func (s *Scanner) Pos() int { return s.pos }

// Byte returns the current byte.
func (s *Scanner) Byte() byte { return s.line[s.pos] }

// State returns the lexical state of the current byte.
func (s *Scanner) State() State { return s.state }

// Peek returns the byte following the current one, or 0 at the end of the line.
func (s *Scanner) Peek() byte {
	if s.pos+1 < len(s.line) {
		return s.line[s.pos+1]
	}
	return 0
}

// Classify reports the lexical state of offset i in line.
// The comment marker itself and everything after it is InComment.
// Offsets outside the line are reported as Code.
func Classify(line string, i int) State {
	if i < 0 || i >= len(line) {
		return Code
	}
	s := NewScanner(line)
	for s.Scan() {
		if s.Pos() == i {
			return s.State()
		}
	}
	// The scan stopped at a comment marker at or before i.
	return InComment
}
