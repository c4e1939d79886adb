// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import "errors"

var (
	ErrUnknownInstruction = errors.New("unknown instruction tag")
	ErrTruncatedPayload   = errors.New("instruction payload truncated")
	ErrTrailingBytes      = errors.New("instruction payload has trailing bytes")
)
