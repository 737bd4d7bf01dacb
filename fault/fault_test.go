// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/cells/fault"
)

var (
	ErrValidationOne = fault.ValidationError("validation one")
	ErrValidationTwo = fault.ValidationError("validation two")
	ErrFormatOne     = fault.FormatError("format one")
	ErrFormatTwo     = fault.FormatError("format two")
	ErrIntegrityOne  = fault.IntegrityError("integrity one")
	ErrIntegrityTwo  = fault.IntegrityError("integrity two")
	ErrUsageOne      = fault.UsageError("usage one")
	ErrUsageTwo      = fault.UsageError("usage two")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		validation bool
		format     bool
		integrity  bool
		usage      bool
	}{
		{ErrValidationOne, true, false, false, false},
		{ErrValidationTwo, true, false, false, false},
		{ErrFormatOne, false, true, false, false},
		{ErrFormatTwo, false, true, false, false},
		{ErrIntegrityOne, false, false, true, false},
		{ErrIntegrityTwo, false, false, true, false},
		{ErrUsageOne, false, false, false, true},
		{ErrUsageTwo, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrValidation(err) != e.validation {
			t.Errorf("%d: expected 'validation' == %v for err = %v", i, e.validation, err)
		}
		if fault.IsErrFormat(err) != e.format {
			t.Errorf("%d: expected 'format' == %v for err = %v", i, e.format, err)
		}
		if fault.IsErrIntegrity(err) != e.integrity {
			t.Errorf("%d: expected 'integrity' == %v for err = %v", i, e.integrity, err)
		}
		if fault.IsErrUsage(err) != e.usage {
			t.Errorf("%d: expected 'usage' == %v for err = %v", i, e.usage, err)
		}
	}
}
