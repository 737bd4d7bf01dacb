// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package boc - canonical bag of cells wire codec
//
// layout of a packed bag:
//   magic        4 bytes  B5 EE 9C 72
//   flags        1 byte   0x80 index present
//                         0x40 crc32c present
//                         0x20 cache bits present
//                         0x07 index field width in bytes
//   offset width 1 byte
//   cell count   index width bytes, big endian
//   root count   index width bytes
//   absent count index width bytes, always zero
//   payload size offset width bytes, total cell record bytes
//   root list    root count indices
//   offset table cell count cumulative end offsets (index flag only)
//   cell records d1, d2, augmented payload, reference indices
//   checksum     crc32c little endian over all preceding bytes
//                (crc flag only)
//
// canonical order assigns every distinct cell one index and every
// reference points at a strictly higher index than its holder, so a
// decoder can materialise cells from the last record backwards with
// all references already built
//
// a bag either decodes into a fully valid DAG or the whole decode
// fails; no partial result is ever returned
package boc
