// Package metrics persists per-call metadata for external AI agent
// invocations so slow or failing upstreams show up in the health view.
package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/metrics/metricsdb"
)

// AgentCall records metadata for a single agent invocation.
type AgentCall struct {
	AgentName string
	Outcome   string
	Latency   time.Duration
	Timestamp time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
	db      *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		db:      db,
	}
}

// Record saves one agent call. Failures to record are returned but a
// caller may reasonably just log them; metrics never block a request.
func (s *Store) Record(ctx context.Context, call AgentCall) error {
	ts := call.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	if err := s.queries.InsertAgentMetric(ctx, metricsdb.InsertAgentMetricParams{
		AgentName: call.AgentName,
		Outcome:   call.Outcome,
		LatencyMs: call.Latency.Milliseconds(),
		Timestamp: ts,
	}); err != nil {
		return fmt.Errorf("failed to record agent metric: %w", err)
	}
	return nil
}

// AgentSummary aggregates call counts and latency per agent and outcome.
type AgentSummary struct {
	AgentName    string  `json:"agentName"`
	Outcome      string  `json:"outcome"`
	Calls        int64   `json:"calls"`
	AvgLatencyMS float64 `json:"avgLatencyMs"`
}

// Summary aggregates agent calls over the last N days.
func (s *Store) Summary(ctx context.Context, days int) ([]AgentSummary, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.queries.GetAgentSummary(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize agent metrics: %w", err)
	}

	var results []AgentSummary
	for _, r := range rows {
		summary := AgentSummary{
			AgentName: r.AgentName,
			Outcome:   r.Outcome,
			Calls:     r.Calls,
		}
		if r.AvgLatencyMs.Valid {
			summary.AvgLatencyMS = r.AvgLatencyMs.Float64
		}
		results = append(results, summary)
	}
	return results, nil
}

// Cleanup removes records older than the specified number of days.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) error {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	if err := s.queries.CleanupAgentMetrics(ctx, threshold); err != nil {
		return fmt.Errorf("failed to clean up agent metrics: %w", err)
	}
	return nil
}
