// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upgrade

import (
	"regexp"
	"strings"

	"github.com/assembly-lang/asmup/edit"
)

// A Rule is a single syntax change, expressed as a pure rewrite
// of a whole program text.
type Rule struct {
	Name  string // stable name, used only for reporting
	Apply func(program string) string
}

var (
	// Before 1.1, a backslash in a string literal was an ordinary character.
	EscapeBackslashes = Rule{"escape-backslashes", escapeBackslashes}

	// Since 3.2, @ in a string literal starts an assembler variable reference.
	EscapeAtSigns = Rule{"escape-at-signs", escapeAtSigns}

	// 3.2 moved the data and state directives to %-prefixed names.
	ReplaceDirectives = Rule{"replace-directives", replaceDirectives}
)

// escapeBackslashes doubles each backslash inside a string literal so that
// it is not read as the start of an escape sequence. A backslash directly
// before a quote already reads as an escaped quote and is left alone.
func escapeBackslashes(program string) string {
	return escapeInStrings(program, func(s *Scanner) bool {
		return s.Byte() == backslash && s.Peek() != quote
	})
}

// escapeAtSigns escapes each @ inside a string literal so that it
// is not read as an assembler variable reference.
func escapeAtSigns(program string) string {
	return escapeInStrings(program, func(s *Scanner) bool {
		return s.Byte() == '@'
	})
}

// escapeInStrings puts a backslash before every byte inside a string
// literal for which match returns true. Each line is scanned only up to
// its comment marker.
func escapeInStrings(program string, match func(*Scanner) bool) string {
	lines := splitLines(program)
	for i, line := range lines {
		var b *edit.Buffer
		s := NewScanner(line)
		for s.Scan() {
			if s.State() != InString || !match(s) {
				continue
			}
			if b == nil {
				b = edit.NewBuffer([]byte(line))
			}
			b.Replace(s.Pos(), s.Pos()+1, `\`+string(s.Byte()))
		}
		if b != nil {
			lines[i] = b.String()
		}
	}
	return strings.Join(lines, "")
}

// splitLines splits program after each line terminator: "\n", "\r\n",
// or a lone "\r". Terminators stay attached to their lines, so joining
// the result gives back program.
func splitLines(program string) []string {
	var lines []string
	for len(program) > 0 {
		i := strings.IndexAny(program, "\r\n")
		if i < 0 {
			break
		}
		end := i + 1
		if program[i] == '\r' && end < len(program) && program[end] == '\n' {
			end++
		}
		lines = append(lines, program[:end])
		program = program[end:]
	}
	if program != "" {
		lines = append(lines, program)
	}
	return lines
}

// Both patterns are matched against a single line, terminator included.
var (
	legacyDirective = regexp.MustCompile(`(?i)^([ \t]*)(DAT|PAD|NUM|IBF|IMP|MAC|ANALYZER|MESSAGE|DEBUG)\b`)
	shortMacro      = regexp.MustCompile(`(?i)^([ \t]*)%MAC([ \t\r\n]|$)`)
)

// replaceDirectives prefixes the pre-3.2 directive keywords that start a
// line with %, then expands the %MAC abbreviation to %MACRO. The second
// step only matches text produced by the first.
func replaceDirectives(program string) string {
	lines := splitLines(program)
	for i, line := range lines {
		line = legacyDirective.ReplaceAllString(line, "${1}%${2}")
		lines[i] = shortMacro.ReplaceAllString(line, "${1}%MACRO${2}")
	}
	return strings.Join(lines, "")
}
