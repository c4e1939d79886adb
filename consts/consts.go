// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// CounterLen is the serialized width of the counter value (borsh
	// int32, little-endian).
	CounterLen = 4

	TagLen = 1

	// MaxInstructionLen bounds any well-formed payload (tag + operand).
	MaxInstructionLen = TagLen + CounterLen
)
