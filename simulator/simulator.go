// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package simulator

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/countervm/counter/consts"
	"github.com/countervm/counter/runtime"
	"github.com/countervm/counter/storage"
)

// Ledger layout:
//
// 0x0 + [account] => account data (counter record)
// 0x1 + [account] => owner id
const (
	accountDataPrefix  byte = 0x0
	accountOwnerPrefix byte = 0x1
)

// Simulator is an in-process stand-in for the ledger host. It owns the
// account store, serializes transactions by construction (callers on
// one goroutine), and commits a transaction's account writes only when
// the program returns success. The program itself never sees the
// database; it operates on a scratch copy of the account bytes, the
// same exclusive-buffer discipline a real host enforces.
type Simulator struct {
	log       *zap.Logger
	db        database.Database
	programID ids.ID
	program   *runtime.Program
	metrics   *metrics
}

func New(log *zap.Logger, programID ids.ID, r prometheus.Registerer) (*Simulator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m, err := newMetrics(r)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		log:       log,
		db:        memdb.New(),
		programID: programID,
		program:   runtime.NewProgram(log),
		metrics:   m,
	}, nil
}

func accountDataKey(account ids.ID) []byte {
	k := make([]byte, 1+ids.IDLen)
	k[0] = accountDataPrefix
	copy(k[1:], account[:])
	return k
}

func accountOwnerKey(account ids.ID) []byte {
	k := make([]byte, 1+ids.IDLen)
	k[0] = accountOwnerPrefix
	copy(k[1:], account[:])
	return k
}

// CreateAccount allocates a zeroed counter account owned by the
// program. This models the host-side account-creation step; the
// program core never creates accounts.
func (s *Simulator) CreateAccount(account ids.ID) error {
	has, err := s.db.Has(accountDataKey(account))
	if err != nil {
		return err
	}
	if has {
		return ErrAccountExists
	}
	if err := s.db.Put(accountOwnerKey(account), s.programID[:]); err != nil {
		return err
	}
	return s.db.Put(accountDataKey(account), make([]byte, consts.CounterLen))
}

// Submit runs one transaction: [payload] against [account]. The stored
// bytes are copied out, the program executes against the copy, and the
// copy replaces the stored bytes only if the program succeeds. A failed
// invocation leaves the ledger byte-identical.
func (s *Simulator) Submit(account ids.ID, payload []byte) error {
	s.metrics.invocations.Inc()

	ownerBytes, err := s.db.Get(accountOwnerKey(account))
	if errors.Is(err, database.ErrNotFound) {
		return ErrAccountNotFound
	}
	if err != nil {
		return err
	}
	owner, err := ids.ToID(ownerBytes)
	if err != nil {
		return err
	}
	data, err := s.db.Get(accountDataKey(account))
	if err != nil {
		return err
	}

	scratch := make([]byte, len(data))
	copy(scratch, data)
	info := &runtime.AccountInfo{
		Key:        account,
		Owner:      owner,
		IsWritable: true,
		Data:       scratch,
	}

	if err := s.program.ProcessInstruction(s.programID, []*runtime.AccountInfo{info}, payload); err != nil {
		s.metrics.reverted.Inc()
		s.log.Debug("transaction reverted",
			zap.Stringer("account", account),
			zap.Error(err),
		)
		return err
	}

	if err := s.db.Put(accountDataKey(account), scratch); err != nil {
		return err
	}
	s.metrics.committed.Inc()
	return nil
}

// ReadCounter returns the committed counter value for [account].
func (s *Simulator) ReadCounter(account ids.ID) (int32, error) {
	data, err := s.db.Get(accountDataKey(account))
	if errors.Is(err, database.ErrNotFound) {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		return 0, err
	}
	record, err := storage.LoadCounter(data)
	if err != nil {
		return 0, err
	}
	return record.Value, nil
}
