package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nexproctor/proctor-server/internal/dependencies/mocks"
	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/services/code"
	"github.com/nexproctor/proctor-server/internal/storage/memory"
)

type StoreSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	registry *code.Registry
	store    *Store
	ctx      context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.registry = code.NewRegistry(s.storage, s.clock, s.random)
	s.store = NewStore(s.storage, s.registry, s.clock)
	s.ctx = context.Background()

	// A generated code for submissions to reference
	s.random.QueueString("A1B2")
	_, err := s.registry.Generate(s.ctx)
	s.Require().NoError(err)
}

func (s *StoreSuite) submission() model.ReportSubmission {
	return model.ReportSubmission{
		StudentID:      "student-42",
		Code:           "NEX-A1B2",
		SuspicionScore: 35.5,
		Violations: []map[string]any{
			{"type": "tab_switch", "count": 3},
			{"type": "face_not_detected"},
		},
		Photos: []map[string]any{
			{"data": "base64-snapshot", "phase": "neutral"},
		},
		ClosedReason:  "MANUAL_SUBMIT",
		TimeRemaining: 600,
		Duration:      3600,
	}
}

// Submit tests

func (s *StoreSuite) TestSubmitSucceeds() {
	record, err := s.store.Submit(s.ctx, s.submission())
	s.Require().NoError(err)

	s.NotEmpty(record.ID)
	s.Equal("student-42", record.StudentID)
	s.Equal(model.CodeValue("NEX-A1B2"), record.Code)
	s.Equal(s.clock.Now(), record.SubmittedAt)
	s.InDelta(35.5, record.SuspicionScore, 0.001)
	s.Equal("MANUAL_SUBMIT", record.ClosedReason)
}

func (s *StoreSuite) TestSubmitComputesCompletionTime() {
	record, err := s.store.Submit(s.ctx, s.submission())
	s.Require().NoError(err)

	s.Equal(3000, record.CompletionTimeSeconds)
}

func (s *StoreSuite) TestSubmitAllowsNegativeCompletionTime() {
	submission := s.submission()
	submission.Duration = 100
	submission.TimeRemaining = 500

	record, err := s.store.Submit(s.ctx, submission)
	s.Require().NoError(err)
	s.Equal(-400, record.CompletionTimeSeconds)
}

func (s *StoreSuite) TestSubmitNormalizesCode() {
	submission := s.submission()
	submission.Code = "nex-a1b2"

	record, err := s.store.Submit(s.ctx, submission)
	s.Require().NoError(err)
	s.Equal(model.CodeValue("NEX-A1B2"), record.Code)
}

func (s *StoreSuite) TestSubmitUnknownCodeFails() {
	submission := s.submission()
	submission.Code = "NEX-0000"

	_, err := s.store.Submit(s.ctx, submission)
	s.ErrorIs(err, model.ErrUnknownCode)

	// No report is created on failure
	summaries, _ := s.store.ListSummaries(s.ctx)
	s.Empty(summaries)
}

func (s *StoreSuite) TestSubmitAcceptsInactiveCode() {
	// Only absence is rejected; status is not consulted on submission
	_ = s.storage.SaveAccessCode(s.ctx, &model.AccessCode{
		Value:  "NEX-C3D4",
		Status: model.CodeStatusCompleted,
	})

	submission := s.submission()
	submission.Code = "NEX-C3D4"

	_, err := s.store.Submit(s.ctx, submission)
	s.NoError(err)
}

func (s *StoreSuite) TestSubmitLeavesCodeActive() {
	_, err := s.store.Submit(s.ctx, s.submission())
	s.Require().NoError(err)

	tracked, err := s.storage.GetAccessCode(s.ctx, "NEX-A1B2")
	s.Require().NoError(err)
	s.Equal(model.CodeStatusActive, tracked.Status)
	s.Empty(tracked.UsedBy)

	// The same code backs a second submission
	_, err = s.store.Submit(s.ctx, s.submission())
	s.NoError(err)
}

func (s *StoreSuite) TestSubmitAssignsDistinctIDs() {
	seen := make(map[model.ReportID]bool)
	for i := 0; i < 20; i++ {
		record, err := s.store.Submit(s.ctx, s.submission())
		s.Require().NoError(err)
		s.False(seen[record.ID], "report id %s assigned twice", record.ID)
		seen[record.ID] = true
	}
}

func (s *StoreSuite) TestSubmitRoundTripsPayloads() {
	submission := s.submission()

	record, err := s.store.Submit(s.ctx, submission)
	s.Require().NoError(err)

	detail, err := s.store.GetDetail(s.ctx, record.ID)
	s.Require().NoError(err)
	s.Equal(submission.Violations, detail.Violations)
	s.Equal(submission.Photos, detail.Photos)
}

// ListSummaries tests

func (s *StoreSuite) TestListSummariesEmpty() {
	summaries, err := s.store.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Empty(summaries)
}

func (s *StoreSuite) TestListSummariesInSubmissionOrder() {
	submission := s.submission()
	var ids []model.ReportID
	for i := 0; i < 3; i++ {
		record, err := s.store.Submit(s.ctx, submission)
		s.Require().NoError(err)
		ids = append(ids, record.ID)
	}

	summaries, err := s.store.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 3)
	for i, summary := range summaries {
		s.Equal(ids[i], summary.ID)
	}
}

func (s *StoreSuite) TestListSummariesProjectsFields() {
	record, err := s.store.Submit(s.ctx, s.submission())
	s.Require().NoError(err)

	summaries, err := s.store.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)

	summary := summaries[0]
	s.Equal(record.ID, summary.ID)
	s.Equal("student-42", summary.StudentID)
	s.Equal(model.CodeValue("NEX-A1B2"), summary.Code)
	s.Equal(record.SubmittedAt, summary.SubmittedAt)
	s.InDelta(35.5, summary.SuspicionScore, 0.001)
	s.Equal(2, summary.ViolationCount)
	s.Equal("MANUAL_SUBMIT", summary.ClosedReason)
}

// GetDetail tests

func (s *StoreSuite) TestGetDetailReturnsStoredRecord() {
	record, err := s.store.Submit(s.ctx, s.submission())
	s.Require().NoError(err)

	detail, err := s.store.GetDetail(s.ctx, record.ID)
	s.Require().NoError(err)
	s.Equal(record, detail)
}

func (s *StoreSuite) TestGetDetailUnknownID() {
	_, err := s.store.GetDetail(s.ctx, "no-such-report")
	s.ErrorIs(err, model.ErrReportNotFound)
}
