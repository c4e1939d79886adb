// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "errors"

var (
	ErrNotEnoughAccounts     = errors.New("instruction references more accounts than were supplied")
	ErrAccountNotWritable    = errors.New("counter account is not writable")
	ErrIncorrectProgramID    = errors.New("counter account is not owned by this program")
	ErrInvalidAccountData    = errors.New("counter account data has the wrong size")
	ErrDeserializationFailed = errors.New("counter account data could not be deserialized")
	ErrArithmeticOverflow    = errors.New("counter value out of range")
)
