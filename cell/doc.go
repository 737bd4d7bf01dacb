// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cell - the atomic unit of the data model
//
// a cell carries up to 1023 bits of payload and up to 4 references
// to other cells; references only point at cells that already exist
// so the reachable structure is always a DAG, never a cycle
//
// every field including the digest is fixed at construction; a cell
// may be shared freely between goroutines without locking
package cell
