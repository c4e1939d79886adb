// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/countervm/counter/consts"
	"github.com/countervm/counter/instructions"
	"github.com/countervm/counter/storage"
)

var testProgramID = ids.ID{0x01}

func newTestAccount(t *testing.T, value int32) *AccountInfo {
	t.Helper()
	data := make([]byte, consts.CounterLen)
	require.NoError(t, storage.StoreCounter(data, storage.Counter{Value: value}))
	return &AccountInfo{
		Key:        ids.ID{0x02},
		Owner:      testProgramID,
		IsWritable: true,
		Data:       data,
	}
}

func counterValue(t *testing.T, account *AccountInfo) int32 {
	t.Helper()
	record, err := storage.LoadCounter(account.Data)
	require.NoError(t, err)
	return record.Value
}

func TestProcessInstruction(t *testing.T) {
	tests := map[string]struct {
		initial     int32
		payload     []byte
		account     func(t *testing.T) *AccountInfo
		expected    int32
		expectedErr error
	}{
		"Increment": {
			initial:  0,
			payload:  []byte{instructions.IncrementID},
			expected: 1,
		},
		"Decrement": {
			initial:  5,
			payload:  []byte{instructions.DecrementID},
			expected: 4,
		},
		"DecrementBelowZero": {
			initial:  0,
			payload:  []byte{instructions.DecrementID},
			expected: -1,
		},
		"Reset": {
			initial:  77,
			payload:  []byte{instructions.ResetID},
			expected: 0,
		},
		"UpdateLittleEndian": {
			initial:  0,
			payload:  []byte{instructions.UpdateID, 42, 0, 0, 0},
			expected: 42,
		},
		"UpdateNegative": {
			initial:  3,
			payload:  []byte{instructions.UpdateID, 0xFF, 0xFF, 0xFF, 0xFF},
			expected: -1,
		},
		"UnknownTag": {
			initial:     7,
			payload:     []byte{9},
			expectedErr: instructions.ErrUnknownInstruction,
		},
		"TruncatedUpdate": {
			initial:     7,
			payload:     []byte{instructions.UpdateID, 1},
			expectedErr: instructions.ErrTruncatedPayload,
		},
		"IncrementOverflow": {
			initial:     math.MaxInt32,
			payload:     []byte{instructions.IncrementID},
			expectedErr: ErrArithmeticOverflow,
		},
		"DecrementOverflow": {
			initial:     math.MinInt32,
			payload:     []byte{instructions.DecrementID},
			expectedErr: ErrArithmeticOverflow,
		},
		"WrongSizeAccount": {
			payload: []byte{instructions.IncrementID},
			account: func(t *testing.T) *AccountInfo {
				account := newTestAccount(t, 0)
				account.Data = make([]byte, consts.CounterLen+1)
				return account
			},
			expectedErr: ErrInvalidAccountData,
		},
		"ForeignOwner": {
			payload: []byte{instructions.IncrementID},
			account: func(t *testing.T) *AccountInfo {
				account := newTestAccount(t, 0)
				account.Owner = ids.ID{0xFF}
				return account
			},
			expectedErr: ErrIncorrectProgramID,
		},
		"ReadOnlyAccount": {
			payload: []byte{instructions.IncrementID},
			account: func(t *testing.T) *AccountInfo {
				account := newTestAccount(t, 0)
				account.IsWritable = false
				return account
			},
			expectedErr: ErrAccountNotWritable,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			account := newTestAccount(t, tt.initial)
			if tt.account != nil {
				account = tt.account(t)
			}
			before := make([]byte, len(account.Data))
			copy(before, account.Data)

			program := NewProgram(nil)
			err := program.ProcessInstruction(testProgramID, []*AccountInfo{account}, tt.payload)
			if tt.expectedErr != nil {
				require.ErrorIs(err, tt.expectedErr)
				// A failed invocation must leave the stored bytes
				// exactly as they were.
				require.Equal(before, account.Data)
				return
			}
			require.NoError(err)
			require.Equal(tt.expected, counterValue(t, account))
		})
	}
}

func TestProcessInstructionNoAccounts(t *testing.T) {
	require := require.New(t)
	program := NewProgram(nil)
	err := program.ProcessInstruction(testProgramID, nil, []byte{instructions.IncrementID})
	require.ErrorIs(err, ErrNotEnoughAccounts)
}

func TestProcessInstructionSequence(t *testing.T) {
	require := require.New(t)
	program := NewProgram(nil)
	account := newTestAccount(t, 0)

	steps := []struct {
		payload  []byte
		expected int32
	}{
		{[]byte{instructions.IncrementID}, 1},
		{[]byte{instructions.IncrementID}, 2},
		{[]byte{instructions.DecrementID}, 1},
		{[]byte{instructions.UpdateID, 100, 0, 0, 0}, 100},
		{[]byte{instructions.ResetID}, 0},
		// Reset is idempotent.
		{[]byte{instructions.ResetID}, 0},
	}
	for _, step := range steps {
		require.NoError(program.ProcessInstruction(testProgramID, []*AccountInfo{account}, step.payload))
		require.Equal(step.expected, counterValue(t, account))
	}
}

func TestProcessInstructionMonotonic(t *testing.T) {
	require := require.New(t)
	program := NewProgram(nil)
	account := newTestAccount(t, 0)

	const n = 100
	for i := 0; i < n; i++ {
		require.NoError(program.ProcessInstruction(testProgramID, []*AccountInfo{account}, []byte{instructions.IncrementID}))
	}
	require.Equal(int32(n), counterValue(t, account))

	for i := 0; i < 2*n; i++ {
		require.NoError(program.ProcessInstruction(testProgramID, []*AccountInfo{account}, []byte{instructions.DecrementID}))
	}
	require.Equal(int32(-n), counterValue(t, account))
}

func TestAccountIter(t *testing.T) {
	require := require.New(t)
	first := newTestAccount(t, 0)
	second := newTestAccount(t, 1)

	iter := NewAccountIter([]*AccountInfo{first, second})
	account, err := iter.Next()
	require.NoError(err)
	require.Same(first, account)
	account, err = iter.Next()
	require.NoError(err)
	require.Same(second, account)
	_, err = iter.Next()
	require.ErrorIs(err, ErrNotEnoughAccounts)
}
