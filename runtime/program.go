// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"errors"
	"fmt"
	"math"

	"github.com/ava-labs/avalanchego/ids"
	"go.uber.org/zap"

	"github.com/countervm/counter/instructions"
	"github.com/countervm/counter/storage"
)

// Program is the counter program. The host guarantees at most one
// in-flight invocation per account, so Program holds no locks and no
// state of its own; every invocation re-reads and re-writes the
// authoritative account buffer it is handed. A port to a host without
// per-account serialization must not rely on this.
type Program struct {
	log *zap.Logger
}

func NewProgram(log *zap.Logger) *Program {
	if log == nil {
		log = zap.NewNop()
	}
	return &Program{log: log}
}

// ProcessInstruction is the program entrypoint. The host invokes it
// once per transaction with the accounts that transaction references
// and the raw instruction payload; on a non-nil return the host
// discards every tentative account write. Independently of that, no
// error path here runs after the account buffer has been touched.
func (p *Program) ProcessInstruction(
	programID ids.ID,
	accounts []*AccountInfo,
	payload []byte,
) error {
	instruction, err := instructions.Unpack(payload)
	if err != nil {
		p.log.Warn("instruction rejected", zap.Error(err))
		return err
	}

	iter := NewAccountIter(accounts)
	account, err := iter.Next()
	if err != nil {
		return err
	}

	// An on-chain host enforces ownership before dispatch; the check
	// is repeated here so a port to a laxer host cannot mutate foreign
	// accounts.
	if account.Owner != programID {
		return ErrIncorrectProgramID
	}
	if !account.IsWritable {
		return ErrAccountNotWritable
	}

	record, err := storage.LoadCounter(account.Data)
	switch {
	case errors.Is(err, storage.ErrInvalidRecordSize):
		return ErrInvalidAccountData
	case err != nil:
		return fmt.Errorf("%w: %s", ErrDeserializationFailed, err)
	}

	switch instruction := instruction.(type) {
	case *instructions.Increment:
		if record.Value == math.MaxInt32 {
			return ErrArithmeticOverflow
		}
		record.Value++
	case *instructions.Decrement:
		if record.Value == math.MinInt32 {
			return ErrArithmeticOverflow
		}
		record.Value--
	case *instructions.Reset:
		record.Value = 0
	case *instructions.Update:
		record.Value = instruction.Value
	default:
		return instructions.ErrUnknownInstruction
	}

	if err := storage.StoreCounter(account.Data, record); err != nil {
		return err
	}

	p.log.Debug("counter updated",
		zap.Stringer("account", account.Key),
		zap.Uint8("instruction", instruction.GetTypeID()),
		zap.Int32("value", record.Value),
	)
	return nil
}
