// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"strings"
)

// Dump - indentation-per-depth tree rendering with hex payloads
//
// matches the companion tooling convention: one line per cell in the
// form x{HEX}, each level of references indented one further space
func (cell *Cell) Dump() string {
	result := &strings.Builder{}
	cell.dump(result, 0, false)
	return result.String()
}

// DumpBin - same tree rendering with binary payloads, b{BITS}
func (cell *Cell) DumpBin() string {
	result := &strings.Builder{}
	cell.dump(result, 0, true)
	return result.String()
}

func (cell *Cell) dump(result *strings.Builder, indent int, binary bool) {
	result.WriteString(strings.Repeat(" ", indent))
	if binary {
		result.WriteString("b{")
		result.WriteString(cell.payload.FiftBin())
	} else {
		result.WriteString("x{")
		result.WriteString(cell.payload.FiftHex())
	}
	result.WriteString("}\n")
	for _, ref := range cell.refs {
		ref.dump(result, indent+1, binary)
	}
}
