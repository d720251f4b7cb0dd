// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/util"
)

func TestFormatBytes(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 0xfe, 0xff}
	expected := "expected := []byte{\n" +
		"\t0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,\n" +
		"\t0xfe, 0xff,\n" +
		"}"
	assert.Equal(t, expected, util.FormatBytes("expected", data))
	assert.Equal(t, "empty := []byte{\n}", util.FormatBytes("empty", nil))
}

func TestHexToBytes(t *testing.T) {
	tests := []struct {
		in       string
		expected []byte
	}{
		{"", []byte{}},
		{"00ff", []byte{0x00, 0xff}},
		{"0xA5b6", []byte{0xa5, 0xb6}},
		{" 01 02\n03\t", []byte{0x01, 0x02, 0x03}},
	}

	for i, item := range tests {
		b, err := util.HexToBytes(item.in)
		require.NoError(t, err, "%d: %q", i, item.in)
		assert.Equal(t, item.expected, b, "%d: %q", i, item.in)
	}

	_, err := util.HexToBytes("0g")
	assert.Equal(t, fault.ErrInvalidHexString, err, "bad digit")

	_, err = util.HexToBytes("abc")
	assert.Equal(t, fault.ErrInvalidHexString, err, "odd length")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, filepath.Clean("/var/lib/x/data"), util.EnsureAbsolute("/var/lib/x", "data"))
	assert.Equal(t, filepath.Clean("/tmp/data"), util.EnsureAbsolute("/var/lib/x", "/tmp/data"))
}

func TestEnsureDirectory(t *testing.T) {
	directory := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, util.EnsureDirectory(directory))
	require.NoError(t, util.EnsureDirectory(directory), "already exists")
	assert.DirExists(t, directory)
}
