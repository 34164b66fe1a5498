package goACL

import "sync/atomic"

// MetricID identifies one engine counter.
type MetricID uint8

const (
	// MetricRoleGranted counts effective role grants.
	MetricRoleGranted MetricID = iota
	// MetricRoleRevoked counts effective role revocations.
	MetricRoleRevoked
	// MetricAdminAdded counts effective admin grants.
	MetricAdminAdded
	// MetricAdminRevoked counts effective admin revocations.
	MetricAdminRevoked
	// MetricCheckAllowed counts policy checks that allowed execution.
	MetricCheckAllowed
	// MetricCheckDenied counts policy checks that denied execution.
	MetricCheckDenied
	// MetricUnauthorizedMutation counts mutations rejected for a caller
	// lacking admin status.
	MetricUnauthorizedMutation

	metricCount
)

// Metrics is a fixed table of atomic counters. All methods are safe for
// concurrent use and are no-ops on a nil receiver or when disabled.
type Metrics struct {
	enabled  bool
	counters [metricCount]atomic.Uint64
}

func newMetrics(cfg MetricsConfig) *Metrics {
	if !cfg.Enabled {
		return nil
	}
	return &Metrics{enabled: true}
}

func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, metricCount),
	}
	if m == nil || !m.enabled {
		return snap
	}

	for id := MetricID(0); id < metricCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	return snap
}
