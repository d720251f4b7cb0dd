// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
)

// PrefixWidth - number of bytes in a count or length prefix
type PrefixWidth int

// supported prefix widths
const (
	Prefix8  PrefixWidth = Uint8Size  // element counts
	Prefix16 PrefixWidth = Uint16Size // byte blob lengths
)

// Limit - largest count a prefix can hold
func (w PrefixWidth) Limit() int {
	switch w {
	case Prefix8:
		return 0xff
	case Prefix16:
		return 0xffff
	default:
		return 0
	}
}

// ElementReader - decode one element of a sequence
type ElementReader[T any] func(r *Reader) (T, error)

// ElementWriter - encode one element of a sequence
type ElementWriter[T any] func(marshalUtil *marshalutil.MarshalUtil, item T)

// ReadPrefix - read a count or length prefix
func ReadPrefix(r *Reader, width PrefixWidth) (int, error) {
	switch width {
	case Prefix8:
		n, err := r.Uint8()
		return int(n), err
	case Prefix16:
		n, err := r.Uint16()
		return int(n), err
	default:
		return 0, fault.ErrInvalidSize
	}
}

// CheckPrefix - ensure that n fits in a prefix of the given width
func CheckPrefix(width PrefixWidth, n int) error {
	if n < 0 || n > width.Limit() {
		return errors.Wrapf(fault.ErrCountOverflow, "count: %d limit: %d", n, width.Limit())
	}
	return nil
}

// WritePrefix - write a count or length prefix
func WritePrefix(marshalUtil *marshalutil.MarshalUtil, width PrefixWidth, n int) error {
	if err := CheckPrefix(width, n); nil != err {
		return err
	}
	switch width {
	case Prefix8:
		marshalUtil.WriteByte(byte(n))
	case Prefix16:
		marshalUtil.WriteUint16(uint16(n))
	}
	return nil
}

// ReadSequence - decode exactly count elements
//
// zero elements decode as a nil slice
func ReadSequence[T any](r *Reader, count int, read ElementReader[T]) ([]T, error) {
	if 0 == count {
		return nil, nil
	}
	items := make([]T, 0, count)
	for i := 0; i < count; i += 1 {
		item, err := read(r)
		if nil != err {
			return nil, errors.Wrapf(err, "element: %d of: %d", i, count)
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteSequence - encode every element in order
func WriteSequence[T any](marshalUtil *marshalutil.MarshalUtil, items []T, write ElementWriter[T]) {
	for _, item := range items {
		write(marshalUtil, item)
	}
}

// ReadPrefixedSequence - read a prefix immediately followed by that
// many elements
func ReadPrefixedSequence[T any](r *Reader, width PrefixWidth, read ElementReader[T]) ([]T, error) {
	count, err := ReadPrefix(r, width)
	if nil != err {
		return nil, err
	}
	return ReadSequence(r, count, read)
}

// WritePrefixedSequence - write a prefix computed from items followed
// by the elements
func WritePrefixedSequence[T any](marshalUtil *marshalutil.MarshalUtil, width PrefixWidth, items []T, write ElementWriter[T]) error {
	if err := WritePrefix(marshalUtil, width, len(items)); nil != err {
		return err
	}
	WriteSequence(marshalUtil, items, write)
	return nil
}

// ReadPrefixedBytes - read a length prefix followed by that many bytes
func ReadPrefixedBytes(r *Reader, width PrefixWidth) ([]byte, error) {
	length, err := ReadPrefix(r, width)
	if nil != err {
		return nil, err
	}
	return r.Bytes(length)
}

// WritePrefixedBytes - write the length of data followed by data
func WritePrefixedBytes(marshalUtil *marshalutil.MarshalUtil, width PrefixWidth, data []byte) error {
	if err := WritePrefix(marshalUtil, width, len(data)); nil != err {
		return err
	}
	marshalUtil.WriteBytes(data)
	return nil
}

// WriteReserved - write n zero bytes of alignment padding
func WriteReserved(marshalUtil *marshalutil.MarshalUtil, n int) {
	marshalUtil.WriteBytes(make([]byte, n))
}
