// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"os/exec"
	"path/filepath"
	"testing"
)

const (
	oldName = "prog.asm"
	newName = "prog.asm (v3.2)"
	oldText = "MAC x, y\nMOV rg0, 1\nDAT \"@\"\n"
	newText = "%MACRO x, y\nMOV rg0, 1\n%DAT \"\\@\"\n"
	want    = "diff prog.asm prog.asm (v3.2)\n--- prog.asm\n+++ prog.asm (v3.2)\n@@ -1,3 +1,3 @@\n-MAC x, y\n+%MACRO x, y\n MOV rg0, 1\n-DAT \"@\"\n+%DAT \"\\@\"\n"
)

func TestDiff(t *testing.T) {
	if _, err := exec.LookPath("diff"); err != nil {
		t.Skip("diff tool not available")
	}
	out, err := Diff(oldName, []byte(oldText), newName, []byte(newText))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != want {
		t.Errorf("Diff: have:\n%s", out)
		t.Errorf("Diff: want:\n%s", want)
	}
}

func TestDiffIdentical(t *testing.T) {
	out, err := Diff(oldName, []byte(oldText), newName, []byte(oldText))
	if err != nil || out != nil {
		t.Errorf("Diff of identical texts = %q, %v, want nil, nil", out, err)
	}
}

func TestRelabel(t *testing.T) {
	in := "--- /tmp/a\t2023-01-01\n+++ /tmp/b\t2023-01-01\n@@ -1 +1 @@\n-a\n+b\n"
	want := "diff old new\n--- old\n+++ new\n@@ -1 +1 @@\n-a\n+b\n"
	if out := relabel([]byte(in), "old", "new"); string(out) != want {
		t.Errorf("relabel:\nhave:\n%s\nwant:\n%s", out, want)
	}
	if out := relabel([]byte("Binary files differ\n"), "old", "new"); string(out) != "Binary files differ\n" {
		t.Errorf("relabel changed non-unified output: %q", out)
	}
}

func TestRunFailure(t *testing.T) {
	if _, err := exec.LookPath("diff"); err != nil {
		t.Skip("diff tool not available")
	}
	dir := t.TempDir()
	out, err := run(filepath.Join(dir, "missing1"), filepath.Join(dir, "missing2"))
	if err == nil {
		t.Errorf("run on missing files = %q, nil, want error", out)
	}
}
