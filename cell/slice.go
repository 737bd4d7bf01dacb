// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/bitmark-inc/cells/bits"
	"github.com/bitmark-inc/cells/fault"
)

// Slice - a sequential read cursor over one cell
//
// tracks a bit offset and a reference offset; reads past the end
// fail, they are never clamped
type Slice struct {
	cell      *Cell
	bitCursor int
	refCursor int
}

// BitsRemaining - bits not yet consumed
func (slice *Slice) BitsRemaining() int {
	return slice.cell.payload.Length() - slice.bitCursor
}

// RefsRemaining - references not yet consumed
func (slice *Slice) RefsRemaining() int {
	return len(slice.cell.refs) - slice.refCursor
}

// PreloadBits - peek n bits without advancing
func (slice *Slice) PreloadBits(n int) (bits.Bits, error) {
	if n < 0 {
		return bits.Bits{}, fault.ErrWidthOutOfRange
	}
	if n > slice.BitsRemaining() {
		return bits.Bits{}, fault.ErrNotEnoughBits
	}
	return slice.cell.payload.Slice(slice.bitCursor, slice.bitCursor+n)
}

// LoadBits - read n bits and advance
func (slice *Slice) LoadBits(n int) (bits.Bits, error) {
	result, err := slice.PreloadBits(n)
	if nil != err {
		return bits.Bits{}, err
	}
	slice.bitCursor += n
	return result, nil
}

// PreloadUint - peek an n bit big endian unsigned integer
func (slice *Slice) PreloadUint(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fault.ErrWidthOutOfRange
	}
	b, err := slice.PreloadBits(n)
	if nil != err {
		return 0, err
	}
	value := uint64(0)
	for i := 0; i < n; i += 1 {
		bit, _ := b.Bit(i)
		value <<= 1
		if bit {
			value |= 1
		}
	}
	return value, nil
}

// LoadUint - read an n bit big endian unsigned integer and advance
func (slice *Slice) LoadUint(n int) (uint64, error) {
	value, err := slice.PreloadUint(n)
	if nil != err {
		return 0, err
	}
	slice.bitCursor += n
	return value, nil
}

// LoadBit - read a single bit and advance
func (slice *Slice) LoadBit() (bool, error) {
	value, err := slice.LoadUint(1)
	if nil != err {
		return false, err
	}
	return 1 == value, nil
}

// PreloadRef - peek the next reference without advancing
func (slice *Slice) PreloadRef() (*Cell, error) {
	if slice.RefsRemaining() <= 0 {
		return nil, fault.ErrNotEnoughRefs
	}
	return slice.cell.refs[slice.refCursor], nil
}

// LoadRef - consume the next reference
func (slice *Slice) LoadRef() (*Cell, error) {
	ref, err := slice.PreloadRef()
	if nil != err {
		return nil, err
	}
	slice.refCursor += 1
	return ref, nil
}
