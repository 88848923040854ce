package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository interface {
	List(ctx context.Context) ([]model.Candidate, error)
	GetByID(ctx context.Context, id uint) (model.Candidate, error)
	SeedDefaults(ctx context.Context) error
}

// defaultCandidates is inserted once, when the registry is empty.
var defaultCandidates = []model.Candidate{
	{Name: "Alice Johnson", Party: "Party A"},
	{Name: "Bob Smith", Party: "Party B"},
	{Name: "Charlie Brown", Party: "Party C"},
}

type candidate struct {
	db *gorm.DB
}

func newCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidate{
		db: db,
	}
}

func (c *candidate) List(ctx context.Context) ([]model.Candidate, error) {
	var candidates []model.Candidate
	result := c.db.WithContext(ctx).Order("id").Find(&candidates)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return candidates, nil
}

func (c *candidate) GetByID(ctx context.Context, id uint) (model.Candidate, error) {
	var found model.Candidate
	result := c.db.WithContext(ctx).First(&found, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Candidate{}, fmt.Errorf("%w: %v", dto.ErrNotFound, result.Error)
		}
		return model.Candidate{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

// SeedDefaults is idempotent: a non-empty registry is left untouched.
func (c *candidate) SeedDefaults(ctx context.Context) error {
	var count int64
	result := c.db.WithContext(ctx).Model(&model.Candidate{}).Count(&count)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}
	if count > 0 {
		return nil
	}

	candidates := make([]model.Candidate, len(defaultCandidates))
	copy(candidates, defaultCandidates)
	result = c.db.WithContext(ctx).Create(&candidates)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}
