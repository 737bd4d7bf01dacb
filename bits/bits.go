// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bits

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/cells/fault"
)

// Bits - an immutable bit string
//
// bit i of the string is bit (7 - i%8) of data[i/8]; trailing bits
// of the final byte are always zero
type Bits struct {
	length int
	data   []byte
}

// FromBytes - create a bit string covering whole bytes
func FromBytes(buffer []byte) Bits {
	data := make([]byte, len(buffer))
	copy(data, buffer)
	return Bits{
		length: 8 * len(buffer),
		data:   data,
	}
}

// Length - number of bits in the string
func (b Bits) Length() int {
	return b.length
}

// Bit - access a single bit
func (b Bits) Bit(i int) (bool, error) {
	if i < 0 || i >= b.length {
		return false, fault.ErrBitOutOfRange
	}
	return 0 != b.data[i/8]&(0x80>>uint(i%8)), nil
}

// Bytes - the padded byte form, length (bits+7)/8
func (b Bits) Bytes() []byte {
	result := make([]byte, len(b.data))
	copy(result, b.data)
	return result
}

// Slice - extract the range [from, to)
func (b Bits) Slice(from int, to int) (Bits, error) {
	if from < 0 || to < from || to > b.length {
		return Bits{}, fault.ErrBitOutOfRange
	}
	result := Builder{}
	for i := from; i < to; i += 1 {
		bit, _ := b.Bit(i)
		result.mustStoreBit(bit)
	}
	return result.finalise(), nil
}

// Concat - concatenation of two bit strings
func (b Bits) Concat(other Bits) Bits {
	result := Builder{}
	result.mustStoreBits(b)
	result.mustStoreBits(other)
	return result.finalise()
}

// Equal - true if both strings have the same length and content
func (b Bits) Equal(other Bits) bool {
	return b.length == other.length && bytes.Equal(b.data, other.data)
}

// Augment - append one set bit then zero bits until the length is a
// multiple of the boundary
//
// a string already on the boundary still grows by a full group so
// the padding marker is always present
func (b Bits) Augment(to int) (Bits, error) {
	if to <= 0 {
		return Bits{}, fault.ErrWidthOutOfRange
	}
	result := Builder{}
	result.mustStoreBits(b)
	result.mustStoreBit(true)
	for 0 != result.length%to {
		result.mustStoreBit(false)
	}
	return result.finalise(), nil
}

// DeAugment - strip augmentation padding
//
// everything from the last set bit onwards is padding; a string with
// no set bit at all cannot have been augmented
func (b Bits) DeAugment() (Bits, error) {
	for i := b.length - 1; i >= 0; i -= 1 {
		bit, _ := b.Bit(i)
		if bit {
			return b.Slice(0, i)
		}
	}
	return Bits{}, fault.ErrInvalidPadding
}

// FiftHex - hex rendering in the fift convention
//
// nibble aligned strings dump directly; others dump the 4-augmented
// form with a trailing underscore marker
func (b Bits) FiftHex() string {
	if 0 == b.length%4 {
		return strings.ToUpper(hex.EncodeToString(b.data)[:b.length/4])
	}
	augmented, _ := b.Augment(4)
	return strings.ToUpper(hex.EncodeToString(augmented.data)[:augmented.length/4]) + "_"
}

// FiftBin - binary rendering, one character per bit
func (b Bits) FiftBin() string {
	result := make([]byte, b.length)
	for i := 0; i < b.length; i += 1 {
		bit, _ := b.Bit(i)
		if bit {
			result[i] = '1'
		} else {
			result[i] = '0'
		}
	}
	return string(result)
}

// String - same as FiftHex, for use by the fmt package (for %s)
func (b Bits) String() string {
	return b.FiftHex()
}
