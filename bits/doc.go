// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bits - immutable bit strings and their builder
//
// a Bits value is an ordered sequence of bits, stored most
// significant bit first; cell payloads are limited to 1023 bits but
// the type itself carries no such cap so builders can hold
// intermediate values
//
// augmentation is the reversible padding scheme used by the cell
// wire format: append a single set bit then zero bits up to the next
// multiple of the requested boundary; the original length is
// recovered by scanning backwards for the last set bit
package bits
