// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sign - detached signatures over cell digests
//
// the message signed is always the 32 byte content digest of a cell,
// never the serialised bag; key generation and seed derivation are
// the caller's concern
package sign

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/cells/cell"
	"github.com/bitmark-inc/cells/fault"
)

// Signature - a detached ed25519 signature
type Signature []byte

// Cell - sign the digest of a cell
func Cell(privateKey ed25519.PrivateKey, c *cell.Cell) (Signature, error) {
	if ed25519.PrivateKeySize != len(privateKey) {
		return nil, fault.ErrKeyLength
	}
	digest := c.Digest()
	return Signature(ed25519.Sign(privateKey, digest[:])), nil
}

// Verify - check a detached signature against a cell's digest
func Verify(publicKey ed25519.PublicKey, c *cell.Cell, signature Signature) error {
	if ed25519.PublicKeySize != len(publicKey) {
		return fault.ErrKeyLength
	}
	digest := c.Digest()
	if !ed25519.Verify(publicKey, digest[:], signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
