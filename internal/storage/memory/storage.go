package memory

import (
	"context"
	"sync"

	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// All data is lost on restart; durability is out of scope for the
// default deployment.
type Storage struct {
	mu sync.RWMutex

	accounts    map[string]*model.ProctorAccount
	codes       map[model.CodeValue]*model.AccessCode
	reports     []*model.ExamReport
	reportsByID map[model.ReportID]*model.ExamReport
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:    make(map[string]*model.ProctorAccount),
		codes:       make(map[model.CodeValue]*model.AccessCode),
		reportsByID: make(map[model.ReportID]*model.ExamReport),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Proctor account operations

func (s *Storage) SaveProctorAccount(ctx context.Context, account *model.ProctorAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Username] = account
	return nil
}

func (s *Storage) GetProctorAccountByUsername(ctx context.Context, username string) (*model.ProctorAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

// Access code operations

func (s *Storage) SaveAccessCode(ctx context.Context, code *model.AccessCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[code.Value] = code
	return nil
}

func (s *Storage) GetAccessCode(ctx context.Context, value model.CodeValue) (*model.AccessCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.codes[value]
	if !ok {
		return nil, model.ErrCodeNotFound
	}
	return code, nil
}

func (s *Storage) ListAccessCodes(ctx context.Context) (map[model.CodeValue]*model.AccessCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[model.CodeValue]*model.AccessCode, len(s.codes))
	for value, code := range s.codes {
		result[value] = code
	}
	return result, nil
}

func (s *Storage) AccessCodeExists(ctx context.Context, value model.CodeValue) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.codes[value]
	return ok, nil
}

// Report operations

func (s *Storage) AppendReport(ctx context.Context, report *model.ExamReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
	s.reportsByID[report.ID] = report
	return nil
}

func (s *Storage) GetReport(ctx context.Context, id model.ReportID) (*model.ExamReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reportsByID[id]
	if !ok {
		return nil, model.ErrReportNotFound
	}
	return report, nil
}

func (s *Storage) ListReports(ctx context.Context) ([]*model.ExamReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.ExamReport, len(s.reports))
	copy(result, s.reports)
	return result, nil
}
