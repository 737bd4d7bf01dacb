// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/cells/boc"
	"github.com/bitmark-inc/cells/cell"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "binary", HasArg: getoptions.NO_ARGUMENT, Short: 'b'},
		{Long: "hex", HasArg: getoptions.NO_ARGUMENT, Short: 'x'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--binary|--hex] --file=FILE | hex-data", program)
	}

	verbose := len(options["verbose"]) > 0
	binary := len(options["binary"]) > 0
	if binary && len(options["hex"]) > 0 {
		exitwithstatus.Message("%s: --binary and --hex are mutually exclusive", program)
	}

	var packed []byte
	switch {
	case 1 == len(options["file"]):
		packed, err = ioutil.ReadFile(options["file"][0])
		if nil != err {
			exitwithstatus.Message("%s: read error: %s", program, err)
		}
	case 1 == len(arguments):
		packed, err = hex.DecodeString(strings.TrimSpace(arguments[0]))
		if nil != err {
			exitwithstatus.Message("%s: hex decode error: %s", program, err)
		}
	default:
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--binary|--hex] --file=FILE | hex-data", program)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "cell-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("cell-dump")
	log.Infof("unpacking %d bytes", len(packed))

	roots, err := boc.Packed(packed).Unpack()
	if nil != err {
		exitwithstatus.Message("%s: unpack error: %s", program, err)
	}

	for i, root := range roots {
		if verbose {
			fmt.Printf("root %d: digest: %s  depth: %d  refs: %d  bits: %d\n",
				i, root.Digest(), root.Depth(), root.RefCount(), root.Bits().Length())
		}
		dumpTree(root, binary)
	}
}

// print the cell tree in the companion tooling convention
func dumpTree(root *cell.Cell, binary bool) {
	if binary {
		fmt.Print(root.DumpBin())
	} else {
		fmt.Print(root.Dump())
	}
}
