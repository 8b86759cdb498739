package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/nexproctor/proctor-server/internal/dependencies/clock"
	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/services/code"
	"github.com/nexproctor/proctor-server/internal/storage"
)

// Store accepts exam reports, assigns identity and stores them.
// It consults the code registry to validate the code a report is
// submitted under; the registry has no dependency back on the store.
type Store struct {
	storage  storage.Storage
	registry *code.Registry
	clock    clock.Clock
}

// NewStore creates a new report store
func NewStore(storage storage.Storage, registry *code.Registry, clk clock.Clock) *Store {
	return &Store{
		storage:  storage,
		registry: registry,
		clock:    clk,
	}
}

// Submit validates the submission's code against the registry, assigns
// a report id and stores the full record.
//
// Only code absence is rejected: a tracked code is accepted whatever
// its status, and submission does not invalidate it, so one code can
// back multiple reports. The completion time is derived from the
// caller's declared duration and remaining time without bounds checks.
func (s *Store) Submit(ctx context.Context, submission model.ReportSubmission) (*model.ExamReport, error) {
	codeValue := model.NormalizeCode(submission.Code)

	exists, err := s.registry.Exists(ctx, submission.Code)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUnknownCode
	}

	record := &model.ExamReport{
		ID:                    model.ReportID(uuid.NewString()),
		StudentID:             submission.StudentID,
		Code:                  codeValue,
		SubmittedAt:           s.clock.Now(),
		SuspicionScore:        submission.SuspicionScore,
		Violations:            submission.Violations,
		Photos:                submission.Photos,
		ClosedReason:          submission.ClosedReason,
		CompletionTimeSeconds: submission.Duration - submission.TimeRemaining,
	}

	if err := s.storage.AppendReport(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListSummaries returns one summary per stored report in submission
// order. Photos and full violation payloads are excluded.
func (s *Store) ListSummaries(ctx context.Context) ([]model.ReportSummary, error) {
	reports, err := s.storage.ListReports(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.ReportSummary, len(reports))
	for i, r := range reports {
		summaries[i] = r.Summary()
	}
	return summaries, nil
}

// GetDetail returns the full report record including photos and
// violations, or ErrReportNotFound.
func (s *Store) GetDetail(ctx context.Context, id model.ReportID) (*model.ExamReport, error) {
	return s.storage.GetReport(ctx, id)
}
