// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell_test

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/bitmark-inc/cells/bits"
	"github.com/bitmark-inc/cells/cell"
	"github.com/bitmark-inc/cells/fault"
)

// a leaf cell holding the given bytes
func leaf(t *testing.T, buffer ...byte) *cell.Cell {
	t.Helper()
	c, err := cell.NewOrdinary(bits.FromBytes(buffer), nil)
	if nil != err {
		t.Fatalf("leaf error: %s", err)
	}
	return c
}

// a bit string of exactly n bits
func bitString(t *testing.T, n int) bits.Bits {
	t.Helper()
	builder := bits.NewBuilder()
	for i := 0; i < n; i += 1 {
		err := builder.StoreBit(0 == i%2)
		if nil != err {
			t.Fatalf("store error: %s", err)
		}
	}
	return builder.Bits()
}

func TestEmptyCell(t *testing.T) {
	c, err := cell.NewOrdinary(bits.Bits{}, nil)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	if 0 != c.Depth() {
		t.Errorf("depth: %d expected: 0", c.Depth())
	}
	if 1 != c.FullData() {
		t.Errorf("full data: %d expected: 1", c.FullData())
	}
	if 0 != c.RefCount() {
		t.Errorf("ref count: %d expected: 0", c.RefCount())
	}

	expectedDescriptor := []byte{0x00, 0x01, 0x80}
	if !bytes.Equal(expectedDescriptor, c.Descriptor()) {
		t.Errorf("descriptor: %x expected: %x", c.Descriptor(), expectedDescriptor)
	}

	expectedDigest := sha256.Sum256(expectedDescriptor)
	if expectedDigest != c.Digest() {
		t.Errorf("digest: %s expected: %x", c.Digest(), expectedDigest)
	}
}

func TestBitBounds(t *testing.T) {
	_, err := cell.NewOrdinary(bitString(t, cell.MaximumBits), nil)
	if nil != err {
		t.Fatalf("1023 bit cell error: %s", err)
	}

	_, err = cell.NewOrdinary(bitString(t, cell.MaximumBits+1), nil)
	if fault.ErrBitsTooLong != err {
		t.Fatalf("error: %v expected: %v", err, fault.ErrBitsTooLong)
	}
}

func TestRefBounds(t *testing.T) {
	child := leaf(t, 0x01)

	refs := make([]*cell.Cell, cell.MaximumRefs)
	for i := range refs {
		refs[i] = child
	}
	c, err := cell.NewOrdinary(bits.Bits{}, refs)
	if nil != err {
		t.Fatalf("4 ref cell error: %s", err)
	}
	if 1 != c.Depth() {
		t.Errorf("depth: %d expected: 1", c.Depth())
	}

	refs = append(refs, child)
	_, err = cell.NewOrdinary(bits.Bits{}, refs)
	if fault.ErrTooManyRefs != err {
		t.Fatalf("error: %v expected: %v", err, fault.ErrTooManyRefs)
	}

	_, err = cell.NewOrdinary(bits.Bits{}, []*cell.Cell{nil})
	if fault.ErrNilReference != err {
		t.Fatalf("error: %v expected: %v", err, fault.ErrNilReference)
	}
}

func TestDepthBound(t *testing.T) {
	c := leaf(t)

	for i := 1; i <= cell.MaximumDepth; i += 1 {
		parent, err := cell.NewOrdinary(bits.Bits{}, []*cell.Cell{c})
		if nil != err {
			t.Fatalf("depth: %d error: %s", i, err)
		}
		if i != parent.Depth() {
			t.Fatalf("depth: %d expected: %d", parent.Depth(), i)
		}
		c = parent
	}

	_, err := cell.NewOrdinary(bits.Bits{}, []*cell.Cell{c})
	if fault.ErrDepthExceeded != err {
		t.Fatalf("error: %v expected: %v", err, fault.ErrDepthExceeded)
	}
}

func TestDigestPurity(t *testing.T) {
	build := func() *cell.Cell {
		left := leaf(t, 0x12, 0x34)
		right := leaf(t, 0x56)
		root, err := cell.NewOrdinary(bits.FromBytes([]byte{0xff}), []*cell.Cell{left, right})
		if nil != err {
			t.Fatalf("root error: %s", err)
		}
		return root
	}

	first := build()
	second := build()
	if first.Digest() != second.Digest() {
		t.Errorf("digests differ: %s and %s", first.Digest(), second.Digest())
	}
}

func TestDigestSensitivity(t *testing.T) {
	shared := leaf(t, 0xaa)
	original := leaf(t, 0x12)
	changed := leaf(t, 0x13) // one flipped payload bit

	parent := func(changing *cell.Cell) *cell.Cell {
		p, err := cell.NewOrdinary(bits.Bits{}, []*cell.Cell{shared, changing})
		if nil != err {
			t.Fatalf("parent error: %s", err)
		}
		root, err := cell.NewOrdinary(bits.Bits{}, []*cell.Cell{p})
		if nil != err {
			t.Fatalf("root error: %s", err)
		}
		return root
	}

	before := parent(original)
	after := parent(changed)

	if before.Digest() == after.Digest() {
		t.Error("flipped payload bit did not change the root digest")
	}

	// the untouched branch keeps its digest
	beforeShared, err := before.Parse().LoadRef()
	if nil != err {
		t.Fatalf("load ref error: %s", err)
	}
	beforeShared, err = beforeShared.Parse().LoadRef()
	if nil != err {
		t.Fatalf("load ref error: %s", err)
	}
	if beforeShared.Digest() != shared.Digest() {
		t.Error("untouched sibling digest changed")
	}

	// swapping reference order also changes the digest
	swapped, err := cell.NewOrdinary(bits.Bits{}, []*cell.Cell{original, shared})
	if nil != err {
		t.Fatalf("swap error: %s", err)
	}
	straight, err := cell.NewOrdinary(bits.Bits{}, []*cell.Cell{shared, original})
	if nil != err {
		t.Fatalf("straight error: %s", err)
	}
	if swapped.Digest() == straight.Digest() {
		t.Error("reference order does not affect the digest")
	}
}

func TestExoticCell(t *testing.T) {
	payload := bits.FromBytes([]byte{0x02, 0x12, 0x34}) // library tag

	c, err := cell.New(payload, nil, cell.Library)
	if nil != err {
		t.Fatalf("library cell error: %s", err)
	}
	if !c.IsExotic() {
		t.Error("library cell is not exotic")
	}
	if 0x08 != c.Descriptor()[0] {
		t.Errorf("d1: %02x expected: 08", c.Descriptor()[0])
	}

	_, err = cell.New(payload, nil, cell.MerkleProof)
	if fault.ErrExoticTagMismatch != err {
		t.Fatalf("error: %v expected: %v", err, fault.ErrExoticTagMismatch)
	}

	short, err := bits.FromBytes([]byte{0x40}).Slice(0, 4)
	if nil != err {
		t.Fatalf("slice error: %s", err)
	}
	_, err = cell.New(short, nil, cell.PrunedBranch)
	if fault.ErrExoticTooShort != err {
		t.Fatalf("error: %v expected: %v", err, fault.ErrExoticTooShort)
	}
}

func TestDump(t *testing.T) {
	child := leaf(t, 0xab)
	root, err := cell.NewOrdinary(bits.FromBytes([]byte{0x12, 0x34}), []*cell.Cell{child})
	if nil != err {
		t.Fatalf("root error: %s", err)
	}

	expected := "x{1234}\n x{AB}\n"
	if expected != root.Dump() {
		t.Errorf("dump: %q expected: %q", root.Dump(), expected)
	}

	expectedBin := "b{0001001000110100}\n b{10101011}\n"
	if expectedBin != root.DumpBin() {
		t.Errorf("binary dump: %q expected: %q", root.DumpBin(), expectedBin)
	}
}
