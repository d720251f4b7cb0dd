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

// byte sizes of fixed width integers
const (
	Uint8Size  = 1
	Uint16Size = 2
	Uint32Size = 4
	Uint64Size = 8
)

// Reader - bounded read cursor
type Reader struct {
	marshalUtil *marshalutil.MarshalUtil
	size        int
}

// NewReader - create a reader over the whole of buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{
		marshalUtil: marshalutil.New(buffer),
		size:        len(buffer),
	}
}

// Offset - number of bytes consumed so far
func (r *Reader) Offset() int {
	return r.marshalUtil.ReadOffset()
}

// Remaining - number of bytes not yet consumed
func (r *Reader) Remaining() int {
	return r.size - r.marshalUtil.ReadOffset()
}

// Done - true when every byte has been consumed
func (r *Reader) Done() bool {
	return 0 == r.Remaining()
}

// ensure that n more bytes can be read
func (r *Reader) need(n int) error {
	if n < 0 || r.Remaining() < n {
		return errors.Wrapf(fault.ErrTruncatedInput, "need: %d bytes at offset: %d have: %d", n, r.Offset(), r.Remaining())
	}
	return nil
}

// Uint8 - read one byte
func (r *Reader) Uint8() (uint8, error) {
	if err := r.need(Uint8Size); nil != err {
		return 0, err
	}
	value, err := r.marshalUtil.ReadUint8()
	if nil != err {
		return 0, errors.Wrap(fault.ErrTruncatedInput, err.Error())
	}
	return value, nil
}

// Int8 - read one byte as a two's complement signed value
func (r *Reader) Int8() (int8, error) {
	value, err := r.Uint8()
	return int8(value), err
}

// Uint16 - read a little-endian 16 bit value
func (r *Reader) Uint16() (uint16, error) {
	if err := r.need(Uint16Size); nil != err {
		return 0, err
	}
	value, err := r.marshalUtil.ReadUint16()
	if nil != err {
		return 0, errors.Wrap(fault.ErrTruncatedInput, err.Error())
	}
	return value, nil
}

// Uint32 - read a little-endian 32 bit value
func (r *Reader) Uint32() (uint32, error) {
	if err := r.need(Uint32Size); nil != err {
		return 0, err
	}
	value, err := r.marshalUtil.ReadUint32()
	if nil != err {
		return 0, errors.Wrap(fault.ErrTruncatedInput, err.Error())
	}
	return value, nil
}

// Uint64 - read a little-endian 64 bit value
func (r *Reader) Uint64() (uint64, error) {
	if err := r.need(Uint64Size); nil != err {
		return 0, err
	}
	value, err := r.marshalUtil.ReadUint64()
	if nil != err {
		return 0, errors.Wrap(fault.ErrTruncatedInput, err.Error())
	}
	return value, nil
}

// PeekUint32 - read a little-endian 32 bit value without consuming it
func (r *Reader) PeekUint32() (uint32, error) {
	offset := r.Offset()
	value, err := r.Uint32()
	if nil != err {
		return 0, err
	}
	r.marshalUtil.ReadSeek(offset)
	return value, nil
}

// Bytes - read a copy of the next n bytes
//
// zero bytes give a nil slice
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); nil != err {
		return nil, err
	}
	if 0 == n {
		return nil, nil
	}
	b, err := r.marshalUtil.ReadBytes(n)
	if nil != err {
		return nil, errors.Wrap(fault.ErrTruncatedInput, err.Error())
	}
	result := make([]byte, n)
	copy(result, b)
	return result, nil
}

// Fixed - fill the whole of a fixed size destination, e.g. key[:]
func (r *Reader) Fixed(destination []byte) error {
	b, err := r.Bytes(len(destination))
	if nil != err {
		return err
	}
	copy(destination, b)
	return nil
}

// Sub - consume exactly n bytes and return a reader bounded to them
//
// nothing read from the sub-reader can reach beyond those n bytes
func (r *Reader) Sub(n int) (*Reader, error) {
	b, err := r.Bytes(n)
	if nil != err {
		return nil, err
	}
	return NewReader(b), nil
}
