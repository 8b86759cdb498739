package storage

import (
	"context"

	"github.com/nexproctor/proctor-server/internal/model"
)

// Storage defines the interface for data persistence.
//
// The registry owns access code lifetime and the report store owns
// report lifetime; both collections live behind this single interface
// so that one implementation forms a single mutual-exclusion domain
// for all mutations.
type Storage interface {
	// Proctor account operations
	SaveProctorAccount(ctx context.Context, account *model.ProctorAccount) error
	GetProctorAccountByUsername(ctx context.Context, username string) (*model.ProctorAccount, error)

	// Access code operations
	SaveAccessCode(ctx context.Context, code *model.AccessCode) error
	GetAccessCode(ctx context.Context, value model.CodeValue) (*model.AccessCode, error)
	ListAccessCodes(ctx context.Context) (map[model.CodeValue]*model.AccessCode, error)
	AccessCodeExists(ctx context.Context, value model.CodeValue) (bool, error)

	// Report operations. Reports are append-only; ListReports returns
	// them in insertion order.
	AppendReport(ctx context.Context, report *model.ExamReport) error
	GetReport(ctx context.Context, id model.ReportID) (*model.ExamReport, error)
	ListReports(ctx context.Context) ([]*model.ExamReport, error)
}
