// Copyright (C) 2024, CounterVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package simulator

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	invocations prometheus.Counter
	committed   prometheus.Counter
	reverted    prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		invocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "simulator",
			Name:      "invocations",
			Help:      "number of program invocations submitted",
		}),
		committed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "simulator",
			Name:      "committed",
			Help:      "number of invocations whose account writes were committed",
		}),
		reverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "simulator",
			Name:      "reverted",
			Help:      "number of invocations whose account writes were discarded",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.invocations),
		r.Register(m.committed),
		r.Register(m.reverted),
	)
	return m, errs.Err
}
