// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"errors"
	"fmt"

	"github.com/near/borsh-go"

	"github.com/countervm/counter/consts"
)

var (
	ErrInvalidRecordSize = errors.New("account data is not counter-record sized")
	ErrCorruptRecord     = errors.New("counter record bytes are undecodable")
)

// Counter is the sole persisted record. Its borsh form is the account's
// entire data region: a single little-endian int32, no header and no
// version tag.
type Counter struct {
	Value int32
}

// LoadCounter reads the record out of an account's data region. The
// buffer must be exactly [consts.CounterLen] bytes.
func LoadCounter(data []byte) (Counter, error) {
	if len(data) != consts.CounterLen {
		return Counter{}, ErrInvalidRecordSize
	}
	var c Counter
	if err := borsh.Deserialize(&c, data); err != nil {
		// Unreachable after the length check but kept as a contract:
		// a record we cannot read must never be overwritten.
		return Counter{}, fmt.Errorf("%w: %s", ErrCorruptRecord, err)
	}
	return c, nil
}

// StoreCounter overwrites the account's data region with the record's
// serialized form. The write replaces the full fixed-width contents.
func StoreCounter(data []byte, c Counter) error {
	if len(data) != consts.CounterLen {
		return ErrInvalidRecordSize
	}
	raw, err := borsh.Serialize(c)
	if err != nil {
		return err
	}
	copy(data, raw)
	return nil
}
