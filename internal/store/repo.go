package store

import (
	"context"
	"time"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/report"
)

// QueryOpts configures list queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// ArchivedReport is a finished assessment kept for later review. Only
// completed runs are archived; an in-progress run is never written.
type ArchivedReport struct {
	ID        string
	RunID     string
	CreatedAt time.Time
	AnswerKey string
	Answers   []assessment.Answer
	Report    report.Report
}

// ReportRepo manages archived reports.
type ReportRepo interface {
	// Save stores a report. A blank ID is filled with a new UUID and a
	// zero CreatedAt with the current time.
	Save(ctx context.Context, r *ArchivedReport) error

	// List returns reports newest first.
	List(ctx context.Context, opts QueryOpts) ([]ArchivedReport, error)

	// Get returns the report with the given id, or nil if none exists.
	Get(ctx context.Context, id string) (*ArchivedReport, error)

	// Delete removes one report. Returns ErrNotFound for an unknown id.
	Delete(ctx context.Context, id string) error

	// Prune deletes all but the N most recent reports and returns how many
	// were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token use for one purpose or model.
type LLMUsage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo records and queries LLM requests.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event, or nil if none exists.
	GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
