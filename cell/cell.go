// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"encoding/binary"

	"github.com/bitmark-inc/cells/bits"
	"github.com/bitmark-inc/cells/celldigest"
	"github.com/bitmark-inc/cells/fault"
)

// hard limits of the data model
const (
	MaximumBits  = 1023
	MaximumRefs  = 4
	MaximumDepth = 1024
)

// Cell - an immutable node of the cell DAG
//
// construction is strictly bottom-up: references can only point at
// cells that already exist, so cycles cannot be formed; the digest
// and descriptor are computed at construction and never change
type Cell struct {
	payload    bits.Bits
	refs       []*Cell
	cellType   Type
	depth      int
	descriptor []byte
	digest     celldigest.Digest
}

// New - create a cell from payload bits, references and a type
//
// validates all structural bounds; an exotic cell must start with
// the 8 bit tag matching its declared type
func New(payload bits.Bits, refs []*Cell, cellType Type) (*Cell, error) {
	if payload.Length() > MaximumBits {
		return nil, fault.ErrBitsTooLong
	}
	if len(refs) > MaximumRefs {
		return nil, fault.ErrTooManyRefs
	}

	depth := 0
	for _, ref := range refs {
		if nil == ref {
			return nil, fault.ErrNilReference
		}
		if ref.depth >= depth {
			depth = ref.depth + 1
		}
	}
	if depth > MaximumDepth {
		return nil, fault.ErrDepthExceeded
	}

	if cellType.IsExotic() {
		if payload.Length() < 8 {
			return nil, fault.ErrExoticTooShort
		}
		tag, err := tagByte(payload)
		if nil != err {
			return nil, err
		}
		if tag != cellType.tag() {
			return nil, fault.ErrExoticTagMismatch
		}
	}

	cell := &Cell{
		payload:  payload,
		refs:     append([]*Cell(nil), refs...),
		cellType: cellType,
		depth:    depth,
	}
	cell.descriptor = cell.computeDescriptor()
	cell.digest = cell.computeDigest()
	return cell, nil
}

// NewOrdinary - create an ordinary cell
func NewOrdinary(payload bits.Bits, refs []*Cell) (*Cell, error) {
	return New(payload, refs, Ordinary)
}

// Bits - the payload bit string
func (cell *Cell) Bits() bits.Bits {
	return cell.payload
}

// Refs - copy of the ordered reference list
func (cell *Cell) Refs() []*Cell {
	return append([]*Cell(nil), cell.refs...)
}

// RefCount - number of references
func (cell *Cell) RefCount() int {
	return len(cell.refs)
}

// Type - the cell type
func (cell *Cell) Type() Type {
	return cell.cellType
}

// IsExotic - true for every type except Ordinary
func (cell *Cell) IsExotic() bool {
	return cell.cellType.IsExotic()
}

// Depth - 0 for a leaf, otherwise 1 + the deepest reference
func (cell *Cell) Depth() int {
	return cell.depth
}

// FullData - payload length in nibbles, minimum 1
func (cell *Cell) FullData() int {
	n := cell.payload.Length() / 4
	if n < 1 {
		n = 1
	}
	return n
}

// Descriptor - d1, d2 and the 8-augmented payload bytes
//
// this is exactly the prefix of the cell's wire record
func (cell *Cell) Descriptor() []byte {
	return append([]byte(nil), cell.descriptor...)
}

// Digest - the content digest
func (cell *Cell) Digest() celldigest.Digest {
	return cell.digest
}

// Parse - a fresh read cursor over this cell
func (cell *Cell) Parse() *Slice {
	return &Slice{cell: cell}
}

// descriptor layout:
//   d1 = refCount + 8*isExotic
//   d2 = payload nibble count (minimum 1)
//   then the payload augmented to a byte boundary
func (cell *Cell) computeDescriptor() []byte {
	d1 := byte(len(cell.refs))
	if cell.IsExotic() {
		d1 += 8
	}
	augmented, _ := cell.payload.Augment(8)
	return append([]byte{d1, byte(cell.FullData())}, augmented.Bytes()...)
}

// digest buffer:
//   descriptor
//   then each reference depth as 16 bit big endian
//   then each reference digest
//
// reference order matters: swapping two references changes the digest
func (cell *Cell) computeDigest() celldigest.Digest {
	buffer := append([]byte(nil), cell.descriptor...)
	for _, ref := range cell.refs {
		depth := make([]byte, 2)
		binary.BigEndian.PutUint16(depth, uint16(ref.depth))
		buffer = append(buffer, depth...)
	}
	for _, ref := range cell.refs {
		buffer = append(buffer, ref.digest[:]...)
	}
	return celldigest.NewDigest(buffer)
}

// first payload byte, used for exotic tags
func tagByte(payload bits.Bits) (byte, error) {
	head, err := payload.Slice(0, 8)
	if nil != err {
		return 0, fault.ErrExoticTooShort
	}
	return head.Bytes()[0], nil
}
