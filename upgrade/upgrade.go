// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package upgrade rewrites AssEmbly programs written for one revision of
// the language so that they assemble under a later one.
//
// Each syntax change is a Rule registered under the Version that
// introduced it. Upgrading a program from version old to version new runs
// the rules of every registered version v with old < v <= new, earliest
// version first, so that later rules see text already in the form the
// earlier rules produce.
//
// Rules that must not touch comments or the contents of string literals
// consult a Scanner, which classifies each byte of a line as code, string,
// or comment in a single left-to-right pass.
package upgrade

// An Applied records one rule run by Upgrade.
type Applied struct {
	Rule    string
	Version Version
}

func (a Applied) String() string {
	return a.Rule + " (for v" + a.Version.String() + ")"
}

// Upgrade rewrites program from version old to version new using the
// Default registry. See (*Registry).Upgrade.
func Upgrade(program string, old, new Version) (string, []Applied) {
	return Default.Upgrade(program, old, new)
}

// Upgrade runs, in order, the rules of every entry whose version v
// satisfies old < v <= new, feeding each rule the previous rule's output.
// It returns the final text and the rules applied, in execution order.
// If old >= new, no entry qualifies and program is returned unchanged.
func (r *Registry) Upgrade(program string, old, new Version) (string, []Applied) {
	var applied []Applied
	for _, e := range r.entries {
		if !old.Less(e.Version) {
			continue
		}
		if new.Less(e.Version) {
			break
		}
		for _, rule := range e.Rules {
			program = rule.Apply(program)
			applied = append(applied, Applied{rule.Name, e.Version})
		}
	}
	return program, applied
}
