// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package celldigest - content digest of a cell
//
// a SHA-256 over the cell's descriptor buffer; stored and rendered
// big endian so the hex form matches the rest of the tooling
package celldigest
