package summary

import (
	"context"
)

// SummaryService aggregates attendance events over a local-date range.
type SummaryService interface {
	// SummarizeRange buckets events by employee and local day, folds each
	// bucket into a DailySummary and returns totals plus anomaly alerts.
	// employeeID == "" summarizes all employees.
	SummarizeRange(ctx context.Context, fromKey, toKey, employeeID string) (RangeSummaryResponse, error)
}
