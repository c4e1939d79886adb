// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"github.com/near/borsh-go"

	"github.com/countervm/counter/consts"
)

const (
	IncrementID uint8 = 0
	DecrementID uint8 = 1
	ResetID     uint8 = 2
	UpdateID    uint8 = 3
)

// Instruction is the closed set of operations the counter program
// executes. A well-formed payload decodes to exactly one of these.
type Instruction interface {
	GetTypeID() uint8
}

var (
	_ Instruction = (*Increment)(nil)
	_ Instruction = (*Decrement)(nil)
	_ Instruction = (*Reset)(nil)
	_ Instruction = (*Update)(nil)
)

// Increment adds one to the counter.
type Increment struct{}

func (*Increment) GetTypeID() uint8 {
	return IncrementID
}

// Decrement subtracts one from the counter. The counter may go
// negative.
type Decrement struct{}

func (*Decrement) GetTypeID() uint8 {
	return DecrementID
}

// Reset sets the counter to zero.
type Reset struct{}

func (*Reset) GetTypeID() uint8 {
	return ResetID
}

// Update sets the counter to [Value] verbatim.
type Update struct {
	Value int32
}

func (*Update) GetTypeID() uint8 {
	return UpdateID
}

// Unpack decodes a raw instruction payload. The first byte selects the
// operation; Update carries a borsh-encoded int32 operand. Payload
// lengths are strict: shorter than the tag demands fails with
// ErrTruncatedPayload, longer with ErrTrailingBytes. Unpack never
// touches any state.
func Unpack(payload []byte) (Instruction, error) {
	if len(payload) < consts.TagLen {
		return nil, ErrTruncatedPayload
	}
	tag, operand := payload[0], payload[consts.TagLen:]
	switch tag {
	case IncrementID:
		if len(operand) > 0 {
			return nil, ErrTrailingBytes
		}
		return &Increment{}, nil
	case DecrementID:
		if len(operand) > 0 {
			return nil, ErrTrailingBytes
		}
		return &Decrement{}, nil
	case ResetID:
		if len(operand) > 0 {
			return nil, ErrTrailingBytes
		}
		return &Reset{}, nil
	case UpdateID:
		if len(operand) < consts.CounterLen {
			return nil, ErrTruncatedPayload
		}
		if len(operand) > consts.CounterLen {
			return nil, ErrTrailingBytes
		}
		var value int32
		if err := borsh.Deserialize(&value, operand); err != nil {
			return nil, err
		}
		return &Update{Value: value}, nil
	default:
		return nil, ErrUnknownInstruction
	}
}
