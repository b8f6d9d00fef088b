// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upgrade

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"golang.org/x/xerrors"
)

// A Version is an AssEmbly language revision, identified by its major and
// minor numbers. Patch releases never change the syntax, so they are not
// represented. Both numbers must be non-negative.
type Version struct {
	Major int
	Minor int
}

// A VersionError reports a version string that is not of the form major.minor.
type VersionError struct {
	Input string
	Err   error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Input, e.Err)
}

func (e *VersionError) Unwrap() error {
	return e.Err
}

// ParseVersion parses a version of the form "major.minor",
// such as "1.1" or "3.2". Components are non-negative decimal
// integers without leading zeros.
func ParseVersion(s string) (Version, error) {
	v := "v" + s
	if semver.MajorMinor(v) != v {
		return Version{}, &VersionError{s, xerrors.New("want major.minor")}
	}
	major, minor, _ := strings.Cut(s, ".")
	var ver Version
	var err error
	if ver.Major, err = strconv.Atoi(major); err != nil {
		return Version{}, &VersionError{s, xerrors.Errorf("major version: %w", err)}
	}
	if ver.Minor, err = strconv.Atoi(minor); err != nil {
		return Version{}, &VersionError{s, xerrors.Errorf("minor version: %w", err)}
	}
	return ver, nil
}

// MustParseVersion is like ParseVersion but panics if s is not a valid version.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0, or +1 depending on whether
// v < w, v == w, or v > w. Major numbers are compared first.
func (v Version) Compare(w Version) int {
	switch {
	case v.Major != w.Major:
		return cmpInt(v.Major, w.Major)
	case v.Minor != w.Minor:
		return cmpInt(v.Minor, w.Minor)
	}
	return 0
}

func cmpInt(x, y int) int {
	if x < y {
		return -1
	}
	return +1
}

// Less reports whether v is an earlier version than w.
func (v Version) Less(w Version) bool {
	return v.Compare(w) < 0
}
