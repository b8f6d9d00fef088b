// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares two versions of a program text
// using the system 'diff' tool.
package diff

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Diff returns a unified diff from old to new, labeled with the given names.
// It returns nil if the texts are identical.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	if bytes.Equal(old, new) {
		return nil, nil
	}

	f1, err := writeTempFile(old)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f1)

	f2, err := writeTempFile(new)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f2)

	data, err := run(f1, f2)
	if err != nil {
		return nil, err
	}
	return relabel(data, oldName, newName), nil
}

// run runs diff -u on the named files. Diff exits with status 1
// when the files differ; any other failure is an error.
func run(file1, file2 string) ([]byte, error) {
	data, err := exec.Command("diff", "-u", file1, file2).CombinedOutput()
	if err == nil {
		return data, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ExitCode() == 1 {
		return data, nil
	}
	if msg := bytes.TrimSpace(data); len(msg) > 0 {
		return nil, fmt.Errorf("running diff: %v: %s", err, msg)
	}
	return nil, fmt.Errorf("running diff: %v", err)
}

// relabel replaces the temporary file names in the header of
// diff -u output with oldName and newName.
func relabel(data []byte, oldName, newName string) []byte {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		return data
	}
	j := bytes.IndexByte(data[i+1:], '\n')
	if j < 0 {
		return data
	}
	start := i + 1 + j + 1
	if start >= len(data) || data[start] != '@' {
		return data
	}
	hdr := fmt.Sprintf("diff %s %s\n--- %s\n+++ %s\n", oldName, newName, oldName, newName)
	return append([]byte(hdr), data[start:]...)
}

func writeTempFile(data []byte) (string, error) {
	file, err := os.CreateTemp("", "asmup-diff")
	if err != nil {
		return "", err
	}
	_, err = file.Write(data)
	if err1 := file.Close(); err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(file.Name())
		return "", err
	}
	return file.Name(), nil
}
