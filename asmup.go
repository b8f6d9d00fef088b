// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/assembly-lang/asmup/diff"
	"github.com/assembly-lang/asmup/upgrade"
	"golang.org/x/xerrors"
)

var (
	showDiff = flag.Bool("diff", false, "show diff instead of writing the destination file")
	list     = flag.Bool("list", false, "list the known syntax changes and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: asmup [-diff] src dst srcversion dstversion\n")
	fmt.Fprintf(os.Stderr, "       asmup -list\n")
	fmt.Fprintf(os.Stderr, "Versions are in the form major.minor, such as 1.1.\n")
	os.Exit(2)
}

func main() {
	log.SetPrefix("asmup: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()

	u := newUpgrader(".")
	u.ShowDiff = *showDiff
	if *list {
		u.list()
		return
	}
	if flag.NArg() != 4 {
		usage()
	}
	if err := u.run(flag.Args()); err != nil {
		log.Fatal(err)
	}
}

// An upgrader holds the state for upgrading one program file.
type upgrader struct {
	dir      string
	reg      *upgrade.Registry
	ShowDiff bool
	Stdout   io.Writer
}

// newUpgrader returns an upgrader resolving relative paths against dir.
func newUpgrader(dir string) *upgrader {
	return &upgrader{
		dir:    dir,
		reg:    upgrade.Default,
		Stdout: os.Stdout,
	}
}

func (u *upgrader) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(u.dir, name)
}

// run upgrades the program in args[0] from version args[2] to version args[3],
// writing the result to args[1].
func (u *upgrader) run(args []string) error {
	if len(args) != 4 {
		return newErrUsage("want 4 arguments, have %d", len(args))
	}
	src, dst := args[0], args[1]

	// Parse both versions before touching any file.
	from, err := upgrade.ParseVersion(args[2])
	if err != nil {
		return err
	}
	to, err := upgrade.ParseVersion(args[3])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(u.path(src))
	if err != nil {
		return xerrors.Errorf("reading program: %w", err)
	}

	text, applied := u.reg.Upgrade(string(data), from, to)
	if len(applied) == 0 {
		fmt.Fprintf(u.Stdout, "no upgrades required between version %v and %v\n", from, to)
		return nil
	}

	if u.ShowDiff {
		d, err := diff.Diff(src, data, dst, []byte(text))
		if err != nil {
			return err
		}
		u.Stdout.Write(d)
	} else if err := os.WriteFile(u.path(dst), []byte(text), 0666); err != nil {
		return xerrors.Errorf("writing upgraded program: %w", err)
	}

	u.report(applied)
	return nil
}

func (u *upgrader) report(applied []upgrade.Applied) {
	var buf strings.Builder
	fmt.Fprintf(&buf, "applied %d upgrade(s):\n", len(applied))
	for _, a := range applied {
		fmt.Fprintf(&buf, "\t%v\n", a)
	}
	io.WriteString(u.Stdout, buf.String())
}

func (u *upgrader) list() {
	for _, e := range u.reg.Entries() {
		var names []string
		for _, r := range e.Rules {
			names = append(names, r.Name)
		}
		fmt.Fprintf(u.Stdout, "v%v: %s\n", e.Version, strings.Join(names, ", "))
	}
	fmt.Fprintf(u.Stdout, "programs for v%v or later need no upgrade\n", u.reg.Latest())
}
