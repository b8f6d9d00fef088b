// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Asmup upgrades AssEmbly programs to a newer revision of the language.
//
// Usage:
//
//	asmup [-diff] src dst srcversion dstversion
//	asmup -list
//
// Asmup reads the program in src, written for language version srcversion,
// and applies every syntax change made after srcversion up to and including
// dstversion. Versions are written major.minor, as in:
//
//	asmup old.asm new.asm 1.0 3.2
//
// If no change lies between the two versions, asmup says so and does not
// write dst. Otherwise it writes the upgraded program to dst, which may be
// the same file as src, and lists the changes applied. The -diff flag causes
// asmup to print a diff of the intended changes instead of writing dst.
// The -list flag prints every known change and the version that introduced it.
//
// # Changes
//
// Version 1.1 made the backslash an escape character in string literals.
// Backslashes inside strings are doubled, except one directly before a
// quote, which is taken to be an escaped quote already.
//
// Version 3.2 made @ in a string literal start an assembler variable
// reference, and renamed the directives DAT, PAD, NUM, IBF, IMP, MAC,
// ANALYZER, MESSAGE and DEBUG to %-prefixed forms (MAC becoming %MACRO).
// Each @ inside a string is escaped as \@, and each legacy directive that
// starts a line gains its % prefix. Only whole keywords are renamed: a longer
// word at the start of a line, such as MACRO or DATA, is left as it is.
//
// Asmup does not parse programs. Strings and comments are recognized line by
// line, where a line ends at "\n", "\r\n" or a lone "\r". A semicolon starts
// a comment that runs to the end of the line, even within quotes, and a
// position is inside a string when an odd number of unescaped double quotes
// precede it on its line. Nothing in a comment is ever rewritten.
package main
