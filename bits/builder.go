// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bits

import (
	"github.com/bitmark-inc/cells/fault"
)

// Builder - append-only accumulator producing a Bits value
//
// a Builder is single use: after Bits is called further stores fail
// until Reset
type Builder struct {
	length    int
	data      []byte
	finalised bool
}

// NewBuilder - create an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Length - number of bits accumulated so far
func (builder *Builder) Length() int {
	return builder.length
}

// StoreBit - append a single bit
func (builder *Builder) StoreBit(bit bool) error {
	if builder.finalised {
		return fault.ErrBuilderFinalised
	}
	builder.mustStoreBit(bit)
	return nil
}

// StoreBits - append a whole bit string
func (builder *Builder) StoreBits(b Bits) error {
	if builder.finalised {
		return fault.ErrBuilderFinalised
	}
	builder.mustStoreBits(b)
	return nil
}

// StoreBytes - append whole bytes
func (builder *Builder) StoreBytes(buffer []byte) error {
	return builder.StoreBits(FromBytes(buffer))
}

// StoreUint - append an n bit big endian unsigned integer
//
// the value must fit the declared width, it is never clamped or
// truncated
func (builder *Builder) StoreUint(value uint64, width int) error {
	if builder.finalised {
		return fault.ErrBuilderFinalised
	}
	if width < 0 || width > 64 {
		return fault.ErrWidthOutOfRange
	}
	if width < 64 && value >= 1<<uint(width) {
		return fault.ErrValueTooLarge
	}
	for i := width - 1; i >= 0; i -= 1 {
		builder.mustStoreBit(0 != value&(1<<uint(i)))
	}
	return nil
}

// Bits - finalise and return the accumulated bit string
func (builder *Builder) Bits() Bits {
	builder.finalised = true
	return builder.finalise()
}

// Reset - discard all accumulated bits and allow reuse
func (builder *Builder) Reset() {
	builder.length = 0
	builder.data = nil
	builder.finalised = false
}

// internal append, bounds already checked by callers
func (builder *Builder) mustStoreBit(bit bool) {
	if 0 == builder.length%8 {
		builder.data = append(builder.data, 0)
	}
	if bit {
		builder.data[builder.length/8] |= 0x80 >> uint(builder.length%8)
	}
	builder.length += 1
}

func (builder *Builder) mustStoreBits(b Bits) {
	for i := 0; i < b.length; i += 1 {
		bit, _ := b.Bit(i)
		builder.mustStoreBit(bit)
	}
}

// copy out the accumulated bits without marking the builder done
func (builder *Builder) finalise() Bits {
	data := make([]byte, len(builder.data))
	copy(data, builder.data)
	return Bits{
		length: builder.length,
		data:   data,
	}
}
