package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// It exists for deployments that want state to survive a restart; the
// in-memory implementation remains the default.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Proctor account operations

func (s *Storage) SaveProctorAccount(ctx context.Context, account *model.ProctorAccount) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, accountKey(account.Username), data, 0).Err()
}

func (s *Storage) GetProctorAccountByUsername(ctx context.Context, username string) (*model.ProctorAccount, error) {
	data, err := s.client.Get(ctx, accountKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.ProctorAccount
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Access code operations

func (s *Storage) SaveAccessCode(ctx context.Context, code *model.AccessCode) error {
	data, err := json.Marshal(code)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, codeKey(code.Value), data, 0)
	pipe.SAdd(ctx, codeIndexKey(), string(code.Value))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAccessCode(ctx context.Context, value model.CodeValue) (*model.AccessCode, error) {
	data, err := s.client.Get(ctx, codeKey(value)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCodeNotFound
		}
		return nil, err
	}

	var code model.AccessCode
	if err := json.Unmarshal(data, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

func (s *Storage) ListAccessCodes(ctx context.Context) (map[model.CodeValue]*model.AccessCode, error) {
	values, err := s.client.SMembers(ctx, codeIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	result := make(map[model.CodeValue]*model.AccessCode, len(values))
	for _, value := range values {
		code, err := s.GetAccessCode(ctx, model.CodeValue(value))
		if err != nil {
			if errors.Is(err, model.ErrCodeNotFound) {
				// Index entry without a value key; skip it
				continue
			}
			return nil, err
		}
		result[code.Value] = code
	}
	return result, nil
}

func (s *Storage) AccessCodeExists(ctx context.Context, value model.CodeValue) (bool, error) {
	return s.client.SIsMember(ctx, codeIndexKey(), string(value)).Result()
}

// Report operations

func (s *Storage) AppendReport(ctx context.Context, report *model.ExamReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, reportKey(report.ID), data, 0)
	pipe.RPush(ctx, reportOrderKey(), string(report.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetReport(ctx context.Context, id model.ReportID) (*model.ExamReport, error) {
	data, err := s.client.Get(ctx, reportKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrReportNotFound
		}
		return nil, err
	}

	var report model.ExamReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *Storage) ListReports(ctx context.Context) ([]*model.ExamReport, error) {
	ids, err := s.client.LRange(ctx, reportOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	reports := make([]*model.ExamReport, 0, len(ids))
	for _, id := range ids {
		report, err := s.GetReport(ctx, model.ReportID(id))
		if err != nil {
			if errors.Is(err, model.ErrReportNotFound) {
				continue
			}
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
