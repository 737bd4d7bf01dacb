// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boc

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/bitmark-inc/cells/cell"
	"github.com/bitmark-inc/cells/celldigest"
	"github.com/bitmark-inc/cells/fault"
)

// Packed - a serialised bag of cells
type Packed []byte

// wire magic
var magic = []byte{0xb5, 0xee, 0x9c, 0x72}

// flags byte layout
const (
	flagIndexPresent     = 0x80
	flagCrc32cPresent    = 0x40
	flagCacheBitsPresent = 0x20
	flagWidthMask        = 0x07
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Pack - serialise a cell DAG into its canonical byte form
//
// the traversal is deterministic so packing the same DAG with the
// same flags is always byte identical; cells shared by several
// parents are emitted exactly once
func Pack(roots []*cell.Cell, hasIndex bool, hasCrc32c bool) (Packed, error) {
	if 0 == len(roots) {
		return nil, fault.ErrNoRoots
	}
	for _, root := range roots {
		if nil == root {
			return nil, fault.ErrNilReference
		}
	}

	order, index := canonicalOrder(roots)

	cellCount := len(order)
	indexWidth := widthFor(uint64(cellCount))

	// cell records and their cumulative end offsets
	records := []byte(nil)
	offsets := make([]uint64, cellCount)
	for i, c := range order {
		records = append(records, c.Descriptor()...)
		for _, ref := range c.Refs() {
			records = appendUint(records, uint64(index[ref.Digest()]), indexWidth)
		}
		offsets[i] = uint64(len(records))
	}
	offsetWidth := widthFor(uint64(len(records)))

	flags := byte(indexWidth)
	if hasIndex {
		flags |= flagIndexPresent
	}
	if hasCrc32c {
		flags |= flagCrc32cPresent
	}

	buffer := append([]byte(nil), magic...)
	buffer = append(buffer, flags, byte(offsetWidth))
	buffer = appendUint(buffer, uint64(cellCount), indexWidth)
	buffer = appendUint(buffer, uint64(len(roots)), indexWidth)
	buffer = appendUint(buffer, 0, indexWidth) // absent cells
	buffer = appendUint(buffer, uint64(len(records)), offsetWidth)

	for _, root := range roots {
		buffer = appendUint(buffer, uint64(index[root.Digest()]), indexWidth)
	}

	if hasIndex {
		for _, offset := range offsets {
			buffer = appendUint(buffer, offset, offsetWidth)
		}
	}

	buffer = append(buffer, records...)

	if hasCrc32c {
		checksum := make([]byte, 4)
		binary.LittleEndian.PutUint32(checksum, crc32.Checksum(buffer, castagnoli))
		buffer = append(buffer, checksum...)
	}

	return Packed(buffer), nil
}

// assign each distinct cell one index such that every reference
// points at a strictly higher index than its holder
//
// depth first with reference slots descended in reverse, emitting a
// cell after its descendants; the reversed emission order is then a
// topological order that coincides with pre-order on plain trees
func canonicalOrder(roots []*cell.Cell) ([]*cell.Cell, map[celldigest.Digest]int) {
	reversed := []*cell.Cell(nil)
	seen := map[celldigest.Digest]bool{}

	var visit func(c *cell.Cell)
	visit = func(c *cell.Cell) {
		if seen[c.Digest()] {
			return
		}
		seen[c.Digest()] = true
		refs := c.Refs()
		for i := len(refs) - 1; i >= 0; i -= 1 {
			visit(refs[i])
		}
		reversed = append(reversed, c)
	}
	for i := len(roots) - 1; i >= 0; i -= 1 {
		visit(roots[i])
	}

	order := make([]*cell.Cell, len(reversed))
	index := make(map[celldigest.Digest]int, len(reversed))
	for i, c := range reversed {
		j := len(reversed) - 1 - i
		order[j] = c
		index[c.Digest()] = j
	}
	return order, index
}

// smallest byte width that can hold the value
func widthFor(value uint64) int {
	width := 1
	for width < 8 && value >= 1<<uint(8*width) {
		width += 1
	}
	return width
}

// append a fixed width big endian value
func appendUint(buffer []byte, value uint64, width int) []byte {
	for i := width - 1; i >= 0; i -= 1 {
		buffer = append(buffer, byte(value>>uint(8*i)))
	}
	return buffer
}
