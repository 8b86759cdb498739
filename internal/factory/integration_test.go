package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nexproctor/proctor-server/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.AuthService.ProvisionAccount(s.ctx, "admin", "admin123"))
}

// Test: complete proctoring flow from login to report inspection
func (s *IntegrationSuite) TestCompleteProctoringFlow() {
	s.app.MockRandom.QueueString("A1B2")

	// Step 1: Proctor logs in
	session, err := s.app.AuthService.Authenticate(s.ctx, "admin", "admin123")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)

	// Step 2: Proctor generates an exam code
	generated, err := s.app.CodeRegistry.Generate(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.CodeValue("NEX-A1B2"), generated.Value)

	// Step 3: Student verifies the code (lowercased, as browsers send it)
	err = s.app.CodeRegistry.Verify(s.ctx, "nex-a1b2", "student-42")
	s.Require().NoError(err)

	// Step 4: Student submits an exam report
	record, err := s.app.ReportStore.Submit(s.ctx, model.ReportSubmission{
		StudentID:      "student-42",
		Code:           "nex-a1b2",
		SuspicionScore: 12.0,
		Violations:     []map[string]any{{"type": "tab_switch"}},
		Photos:         []map[string]any{{"data": "base64-snapshot"}},
		ClosedReason:   "MANUAL_SUBMIT",
		TimeRemaining:  600,
		Duration:       3600,
	})
	s.Require().NoError(err)
	s.Equal(3000, record.CompletionTimeSeconds)

	// Step 5: Proctor lists summaries and inspects the full report
	summaries, err := s.app.ReportStore.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(record.ID, summaries[0].ID)
	s.Equal(1, summaries[0].ViolationCount)

	detail, err := s.app.ReportStore.GetDetail(s.ctx, record.ID)
	s.Require().NoError(err)
	s.Equal(record, detail)
}

func (s *IntegrationSuite) TestSubmitWithoutGeneratedCodeFails() {
	_, err := s.app.ReportStore.Submit(s.ctx, model.ReportSubmission{
		StudentID: "student-42",
		Code:      "NEX-0000",
	})
	s.ErrorIs(err, model.ErrUnknownCode)

	summaries, err := s.app.ReportStore.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Empty(summaries)
}
