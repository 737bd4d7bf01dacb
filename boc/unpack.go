// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boc

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/bitmark-inc/cells/bits"
	"github.com/bitmark-inc/cells/cell"
	"github.com/bitmark-inc/cells/fault"
)

// one parsed but not yet materialised cell record
type rawCell struct {
	exotic  bool
	nibbles int
	data    []byte
	refs    []int
}

// Unpack - decode a packed bag of cells into its root cells
//
// the whole buffer is validated before any cell is returned: header
// fields, every record, the declared payload size, an offset table
// when present and the trailing checksum when present; on any
// failure no cells at all are returned
func (record Packed) Unpack() ([]*cell.Cell, error) {

	reader := &reader{buffer: record}

	head, err := reader.take(4)
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(head, magic) {
		return nil, fault.ErrInvalidMagic
	}

	header, err := reader.take(2)
	if nil != err {
		return nil, err
	}
	flags := header[0]
	hasIndex := 0 != flags&flagIndexPresent
	hasCrc32c := 0 != flags&flagCrc32cPresent
	indexWidth := int(flags & flagWidthMask)
	if 0 != flags&^(flagIndexPresent|flagCrc32cPresent|flagCacheBitsPresent|flagWidthMask) {
		return nil, fault.ErrInvalidFlags
	}
	// the flag is part of the wire contract but its record layout is
	// not, so a bag carrying it cannot be decoded correctly
	if 0 != flags&flagCacheBitsPresent {
		return nil, fault.ErrCacheBitsUnsupported
	}
	if indexWidth < 1 || indexWidth > 8 {
		return nil, fault.ErrInvalidWidth
	}
	offsetWidth := int(header[1])
	if offsetWidth < 1 || offsetWidth > 8 {
		return nil, fault.ErrInvalidWidth
	}

	cellCount, err := reader.uint(indexWidth)
	if nil != err {
		return nil, err
	}
	rootCount, err := reader.uint(indexWidth)
	if nil != err {
		return nil, err
	}
	absentCount, err := reader.uint(indexWidth)
	if nil != err {
		return nil, err
	}
	if 0 != absentCount {
		return nil, fault.ErrAbsentCellsUnsupported
	}
	payloadSize, err := reader.uint(offsetWidth)
	if nil != err {
		return nil, err
	}
	// identical roots share one record, so the root count may
	// legitimately exceed the cell count; each index is validated
	// individually below
	if 0 == rootCount {
		return nil, fault.ErrInvalidRootIndex
	}

	// the smallest possible record is d1, d2 and one payload byte,
	// and every root index occupies indexWidth bytes, so the
	// declared counts are bounded by the buffer itself
	if payloadSize > uint64(len(record)) || cellCount > payloadSize/3 {
		return nil, fault.ErrBagTooShort
	}
	if rootCount > uint64(len(record)-reader.cursor)/uint64(indexWidth) {
		return nil, fault.ErrBagTooShort
	}

	rootIndices := make([]int, rootCount)
	for i := range rootIndices {
		root, err := reader.uint(indexWidth)
		if nil != err {
			return nil, err
		}
		if root >= cellCount {
			return nil, fault.ErrInvalidRootIndex
		}
		rootIndices[i] = int(root)
	}

	offsets := []uint64(nil)
	if hasIndex {
		offsets = make([]uint64, cellCount)
		for i := range offsets {
			offsets[i], err = reader.uint(offsetWidth)
			if nil != err {
				return nil, err
			}
		}
	}

	rawCells, err := reader.cellRecords(int(cellCount), indexWidth, payloadSize, offsets)
	if nil != err {
		return nil, err
	}

	if hasCrc32c {
		consumed := reader.cursor
		checksum, err := reader.uint32LE()
		if nil != err {
			return nil, err
		}
		if checksum != crc32.Checksum(record[:consumed], castagnoli) {
			return nil, fault.ErrChecksumMismatch
		}
	}
	if reader.cursor != len(record) {
		return nil, fault.ErrTrailingData
	}

	cells, err := materialise(rawCells)
	if nil != err {
		return nil, err
	}

	roots := make([]*cell.Cell, rootCount)
	for i, index := range rootIndices {
		roots[i] = cells[index]
	}
	return roots, nil
}

// parse the cell record section, validating descriptors, reference
// ordering, the declared total size and the offset table if present
func (r *reader) cellRecords(cellCount int, indexWidth int, payloadSize uint64, offsets []uint64) ([]rawCell, error) {

	start := r.cursor
	rawCells := make([]rawCell, cellCount)

	for i := 0; i < cellCount; i += 1 {
		descriptor, err := r.take(2)
		if nil != err {
			return nil, err
		}
		d1 := descriptor[0]
		d2 := descriptor[1]

		// level masks are not supported: bits above the exotic
		// flag must be clear, and d2 is never below one nibble
		if 0 != d1&0xf0 || d1&0x07 > cell.MaximumRefs || 0 == d2 {
			return nil, fault.ErrInvalidDescriptor
		}
		refCount := int(d1 & 0x07)
		exotic := 0 != d1&0x08

		data, err := r.take(int(d2)/2 + 1)
		if nil != err {
			return nil, err
		}

		refs := make([]int, refCount)
		for j := range refs {
			ref, err := r.uint(indexWidth)
			if nil != err {
				return nil, err
			}
			if ref <= uint64(i) || ref >= uint64(cellCount) {
				return nil, fault.ErrInvalidRefIndex
			}
			refs[j] = int(ref)
		}

		if nil != offsets && offsets[i] != uint64(r.cursor-start) {
			return nil, fault.ErrOffsetMismatch
		}

		rawCells[i] = rawCell{
			exotic:  exotic,
			nibbles: int(d2),
			data:    data,
			refs:    refs,
		}
	}

	if uint64(r.cursor-start) != payloadSize {
		return nil, fault.ErrCellSizeMismatch
	}
	return rawCells, nil
}

// build immutable cells from the last record backwards so every
// reference is already materialised; depth and digest recompute as
// pure functions of the recovered content
func materialise(rawCells []rawCell) ([]*cell.Cell, error) {

	cells := make([]*cell.Cell, len(rawCells))

	for i := len(rawCells) - 1; i >= 0; i -= 1 {
		raw := rawCells[i]

		payload, err := bits.FromBytes(raw.data).DeAugment()
		if nil != err {
			return nil, err
		}

		// d2 must agree with the recovered bit length
		nibbles := payload.Length() / 4
		if nibbles < 1 {
			nibbles = 1
		}
		if nibbles != raw.nibbles {
			return nil, fault.ErrInvalidDescriptor
		}

		cellType := cell.Ordinary
		if raw.exotic {
			if payload.Length() < 8 {
				return nil, fault.ErrInvalidDescriptor
			}
			head, err := payload.Slice(0, 8)
			if nil != err {
				return nil, err
			}
			cellType, err = cell.TypeFromTag(head.Bytes()[0])
			if nil != err {
				return nil, err
			}
		}

		refs := make([]*cell.Cell, len(raw.refs))
		for j, index := range raw.refs {
			refs[j] = cells[index]
		}

		cells[i], err = cell.New(payload, refs, cellType)
		if nil != err {
			return nil, err
		}
	}
	return cells, nil
}

// sequential big endian reader over the packed buffer
type reader struct {
	buffer []byte
	cursor int
}

func (r *reader) take(n int) ([]byte, error) {
	if r.cursor+n > len(r.buffer) {
		return nil, fault.ErrBagTooShort
	}
	result := r.buffer[r.cursor : r.cursor+n]
	r.cursor += n
	return result, nil
}

func (r *reader) uint(width int) (uint64, error) {
	buffer, err := r.take(width)
	if nil != err {
		return 0, err
	}
	value := uint64(0)
	for _, b := range buffer {
		value = value<<8 | uint64(b)
	}
	return value, nil
}

func (r *reader) uint32LE() (uint32, error) {
	buffer, err := r.take(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buffer), nil
}
