// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/bitmark-inc/cells/fault"
)

// Type - the closed set of cell kinds
//
// every type except Ordinary is "exotic" and carries its wire tag in
// the first 8 bits of its payload
type Type int

// possible cell types
const (
	Ordinary Type = iota
	PrunedBranch
	Library
	MerkleProof
	MerkleUpdate
)

// wire tags carried by exotic payloads
const (
	prunedBranchTag = 0x01
	libraryTag      = 0x02
	merkleProofTag  = 0x03
	merkleUpdateTag = 0x04
)

// IsExotic - true for every type except Ordinary
func (t Type) IsExotic() bool {
	return Ordinary != t
}

// String - the type name for use by the fmt package (for %s)
func (t Type) String() string {
	switch t {
	case Ordinary:
		return "ordinary"
	case PrunedBranch:
		return "pruned-branch"
	case Library:
		return "library"
	case MerkleProof:
		return "merkle-proof"
	case MerkleUpdate:
		return "merkle-update"
	default:
		return "unknown"
	}
}

// internal: tag byte for an exotic type, zero for Ordinary
func (t Type) tag() byte {
	switch t {
	case PrunedBranch:
		return prunedBranchTag
	case Library:
		return libraryTag
	case MerkleProof:
		return merkleProofTag
	case MerkleUpdate:
		return merkleUpdateTag
	default:
		return 0
	}
}

// TypeFromTag - recover an exotic type from its payload tag
func TypeFromTag(tag byte) (Type, error) {
	switch tag {
	case prunedBranchTag:
		return PrunedBranch, nil
	case libraryTag:
		return Library, nil
	case merkleProofTag:
		return MerkleProof, nil
	case merkleUpdateTag:
		return MerkleUpdate, nil
	default:
		return Ordinary, fault.ErrUnknownExoticTag
	}
}
