// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upgrade

import "fmt"

// An Entry lists the rules that must run, in order, when an upgrade
// crosses Version.
type Entry struct {
	Version Version
	Rules   []Rule
}

// A Registry is an ordered list of entries with strictly increasing
// versions. A Registry is never modified after NewRegistry returns,
// so it is safe for concurrent use.
type Registry struct {
	entries []Entry
}

// Default holds every syntax change made to the AssEmbly language.
var Default = mustRegistry(
	Entry{Version{1, 1}, []Rule{EscapeBackslashes}},
	Entry{Version{3, 2}, []Rule{EscapeAtSigns, ReplaceDirectives}},
)

// NewRegistry returns a registry holding entries, which must be listed
// in strictly increasing version order and each name at least one rule.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := new(Registry)
	for _, e := range entries {
		if err := r.add(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func mustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(e Entry) error {
	if len(e.Rules) == 0 {
		return fmt.Errorf("version %v: no rules", e.Version)
	}
	for _, rule := range e.Rules {
		if rule.Name == "" || rule.Apply == nil {
			return fmt.Errorf("version %v: incomplete rule %q", e.Version, rule.Name)
		}
	}
	if n := len(r.entries); n > 0 {
		if last := r.entries[n-1].Version; !last.Less(e.Version) {
			return fmt.Errorf("version %v listed after %v", e.Version, last)
		}
	}
	e.Rules = append([]Rule(nil), e.Rules...)
	r.entries = append(r.entries, e)
	return nil
}

// Entries returns a copy of the registry's entries in increasing version order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = Entry{e.Version, append([]Rule(nil), e.Rules...)}
	}
	return out
}

// Latest returns the newest version with a registered change.
// It returns the zero Version if the registry is empty.
func (r *Registry) Latest() Version {
	if len(r.entries) == 0 {
		return Version{}
	}
	return r.entries[len(r.entries)-1].Version
}
