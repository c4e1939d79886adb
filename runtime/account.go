// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "github.com/ava-labs/avalanchego/ids"

// AccountInfo is the host-supplied handle to one account referenced by
// the transaction. [Data] aliases the host's buffer for the duration of
// the call; the program must not retain it past the invocation or take
// a second mutable view of it.
type AccountInfo struct {
	Key        ids.ID
	Owner      ids.ID
	IsSigner   bool
	IsWritable bool
	Data       []byte
}

// AccountIter walks an invocation's account list in the order the
// transaction supplied it. Instructions address accounts positionally.
type AccountIter struct {
	accounts []*AccountInfo
}

func NewAccountIter(accounts []*AccountInfo) *AccountIter {
	return &AccountIter{accounts: accounts}
}

// Next returns the next account handle, or ErrNotEnoughAccounts when
// the instruction expects more accounts than the transaction supplied.
func (it *AccountIter) Next() (*AccountInfo, error) {
	if len(it.accounts) == 0 {
		return nil, ErrNotEnoughAccounts
	}
	account := it.accounts[0]
	it.accounts = it.accounts[1:]
	return account, nil
}
