// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// counter-sim applies a sequence of counter instructions to a fresh
// account on the in-process host simulator and prints the final value.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/countervm/counter/instructions"
	"github.com/countervm/counter/simulator"
)

var (
	programID = ids.ID{'c', 'o', 'u', 'n', 't', 'e', 'r'}
	accountID = ids.ID{0x01}
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	parser := argparse.NewParser("counter-sim", "Apply counter instructions to a fresh account")
	ops := parser.StringList("o", "op", &argparse.Options{
		Required: true,
		Help:     "instruction to apply, one of: increment, decrement, reset, update=<value>",
	})
	verbose := parser.Flag("v", "verbose", &argparse.Options{
		Help: "enable debug logging",
	})
	if err := parser.Parse(args); err != nil {
		return errors.New(parser.Usage(err))
	}

	cfg := zap.NewDevelopmentConfig()
	if !*verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	sim, err := simulator.New(log, programID, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	if err := sim.CreateAccount(accountID); err != nil {
		return err
	}

	for _, op := range *ops {
		payload, err := buildPayload(op)
		if err != nil {
			return err
		}
		if err := sim.Submit(accountID, payload); err != nil {
			return fmt.Errorf("%q: %w", op, err)
		}
	}

	value, err := sim.ReadCounter(accountID)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func buildPayload(op string) ([]byte, error) {
	switch {
	case op == "increment":
		return []byte{instructions.IncrementID}, nil
	case op == "decrement":
		return []byte{instructions.DecrementID}, nil
	case op == "reset":
		return []byte{instructions.ResetID}, nil
	case strings.HasPrefix(op, "update="):
		v, err := strconv.ParseInt(strings.TrimPrefix(op, "update="), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad update value in %q: %w", op, err)
		}
		operand, err := borsh.Serialize(int32(v))
		if err != nil {
			return nil, err
		}
		return append([]byte{instructions.UpdateID}, operand...), nil
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}
