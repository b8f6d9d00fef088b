// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upgrade

import (
	"reflect"
	"strings"
	"testing"
)

var v = MustParseVersion

var upgradeTests = []struct {
	in      string
	old     string
	new     string
	out     string
	applied []string
}{
	{`MOV @r1, "C:\path"`, "1.0", "1.1", `MOV @r1, "C:\\path"`, []string{"escape-backslashes (for v1.1)"}},
	{`MOV @r1, "C:\path @home"`, "1.0", "3.2", `MOV @r1, "C:\\path \@home"`, []string{
		"escape-backslashes (for v1.1)",
		"escape-at-signs (for v3.2)",
		"replace-directives (for v3.2)",
	}},
	{"MAC foo, \"a@b\"", "1.1", "3.2", "%MACRO foo, \"a\\@b\"", []string{
		"escape-at-signs (for v3.2)",
		"replace-directives (for v3.2)",
	}},
	{"DAT \"x\\y\"", "1.0", "3.1", "DAT \"x\\\\y\"", []string{"escape-backslashes (for v1.1)"}},
	{"DAT \"x\\y\"", "3.1", "3.2", "%DAT \"x\\y\"", []string{
		"escape-at-signs (for v3.2)",
		"replace-directives (for v3.2)",
	}},
	{"DAT \"x\\y\"", "1.1", "3.1", "DAT \"x\\y\"", nil},
	{"DAT \"x\\y\"", "3.2", "4.0", "DAT \"x\\y\"", nil},
	{"DAT \"x\\y\"", "3.2", "1.0", "DAT \"x\\y\"", nil},
	{"DAT \"x\\y\"", "1.1", "1.1", "DAT \"x\\y\"", nil},
}

func TestUpgrade(t *testing.T) {
	for _, tt := range upgradeTests {
		out, applied := Upgrade(tt.in, v(tt.old), v(tt.new))
		if out != tt.out {
			t.Errorf("Upgrade(%q, %s, %s) = %q, want %q", tt.in, tt.old, tt.new, out, tt.out)
		}
		var names []string
		for _, a := range applied {
			names = append(names, a.String())
		}
		if !reflect.DeepEqual(names, tt.applied) {
			t.Errorf("Upgrade(%q, %s, %s) applied %q, want %q", tt.in, tt.old, tt.new, names, tt.applied)
		}
	}
}

var program = strings.Join([]string{
	`; upgrade me`,
	`MAC push, PSH`,
	`DAT "C:\temp\@x" ; path @ "here"`,
	`  imp "lib\io.asm"`,
	`MOV rg0, @var`,
	`MESSAGE info, "a\"b@c"`,
	``,
}, "\n")

// Upgrading across a registered version in one step or in two gives the same text.
func TestUpgradeComposes(t *testing.T) {
	for _, tt := range []struct{ a, b, c string }{
		{"1.0", "1.1", "3.2"},
		{"1.0", "3.2", "4.0"},
		{"0.9", "1.1", "9.9"},
	} {
		direct, appliedDirect := Upgrade(program, v(tt.a), v(tt.c))
		mid, applied1 := Upgrade(program, v(tt.a), v(tt.b))
		stepped, applied2 := Upgrade(mid, v(tt.b), v(tt.c))
		if direct != stepped {
			t.Errorf("%s->%s = %q, but %s->%s->%s = %q", tt.a, tt.c, direct, tt.a, tt.b, tt.c, stepped)
		}
		if n := len(applied1) + len(applied2); n != len(appliedDirect) {
			t.Errorf("%s->%s applied %d rules, stepwise applied %d", tt.a, tt.c, len(appliedDirect), n)
		}
	}
}

func TestUpgradeProgram(t *testing.T) {
	want := strings.Join([]string{
		`; upgrade me`,
		`%MACRO push, PSH`,
		`%DAT "C:\\temp\\\@x" ; path @ "here"`,
		`  %imp "lib\\io.asm"`,
		`MOV rg0, @var`,
		`%MESSAGE info, "a\"b\@c"`,
		``,
	}, "\n")
	out, applied := Upgrade(program, v("1.0"), v("3.2"))
	if out != want {
		t.Errorf("Upgrade:\nhave:\n%s\nwant:\n%s", out, want)
	}
	if len(applied) != 3 {
		t.Errorf("applied %d rules, want 3", len(applied))
	}
}

func TestUpgradeDeterministic(t *testing.T) {
	first, _ := Upgrade(program, v("1.0"), v("3.2"))
	for i := 0; i < 10; i++ {
		if out, _ := Upgrade(program, v("1.0"), v("3.2")); out != first {
			t.Fatalf("run %d = %q, want %q", i, out, first)
		}
	}
}
