package code

import (
	"context"
	"errors"

	"github.com/nexproctor/proctor-server/internal/dependencies/clock"
	"github.com/nexproctor/proctor-server/internal/dependencies/random"
	"github.com/nexproctor/proctor-server/internal/model"
	"github.com/nexproctor/proctor-server/internal/storage"
)

const (
	// CodePrefix is the fixed prefix on all generated exam codes
	CodePrefix = "NEX-"
	// CodeSuffixLength is the length of the random suffix
	CodeSuffixLength = 4
	// CodeAlphabet is the characters used in code suffixes (avoid confusing chars)
	CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Registry generates, tracks and validates exam access codes
type Registry struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// NewRegistry creates a new code registry
func NewRegistry(storage storage.Storage, clk clock.Clock, rnd random.Random) *Registry {
	return &Registry{
		storage: storage,
		clock:   clk,
		random:  rnd,
	}
}

// Generate produces a new access code distinct from all currently
// tracked codes and inserts it with status active. The suffix is
// regenerated until it does not collide with an existing code.
func (r *Registry) Generate(ctx context.Context) (*model.AccessCode, error) {
	var value model.CodeValue
	for {
		value = model.CodeValue(CodePrefix + r.random.String(CodeSuffixLength, CodeAlphabet))
		exists, err := r.storage.AccessCodeExists(ctx, value)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	code := &model.AccessCode{
		Value:     value,
		Status:    model.CodeStatusActive,
		CreatedAt: r.clock.Now(),
	}

	if err := r.storage.SaveAccessCode(ctx, code); err != nil {
		return nil, err
	}

	return code, nil
}

// List returns all tracked codes regardless of status
func (r *Registry) List(ctx context.Context) (map[model.CodeValue]*model.AccessCode, error) {
	return r.storage.ListAccessCodes(ctx)
}

// Verify checks that a code exists and is active. Comparison is
// case-insensitive. The student id is accepted but not consulted: the
// intended code-to-student binding was never implemented, and the
// parameter is kept so the contract does not change under callers.
// Verification does not mutate the code; verified codes stay active.
func (r *Registry) Verify(ctx context.Context, rawCode string, studentID string) error {
	_ = studentID

	value := model.NormalizeCode(rawCode)
	tracked, err := r.storage.GetAccessCode(ctx, value)
	if err != nil {
		if errors.Is(err, model.ErrCodeNotFound) {
			return model.ErrInvalidOrExpiredCode
		}
		return err
	}

	if tracked.Status != model.CodeStatusActive {
		return model.ErrInvalidOrExpiredCode
	}

	return nil
}

// Exists reports whether a code value is tracked, regardless of status.
// Report submission accepts any tracked code, not just active ones.
func (r *Registry) Exists(ctx context.Context, rawCode string) (bool, error) {
	return r.storage.AccessCodeExists(ctx, model.NormalizeCode(rawCode))
}
