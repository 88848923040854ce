package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/model"
	"gorm.io/gorm"
)

type BallotRepository interface {
	Create(ctx context.Context, ballot model.Ballot) (model.Ballot, error)
	GetByUserID(ctx context.Context, userID uint) (model.Ballot, error)
	CountResults(ctx context.Context) ([]dto.CandidateResult, error)
}

type ballot struct {
	db *gorm.DB
}

func newBallotRepository(db *gorm.DB) BallotRepository {
	return &ballot{
		db: db,
	}
}

// Create appends a ballot to the ledger. The unique index on user_id rejects a
// second ballot for the same user; that rejection is reported as
// dto.ErrAlreadyVoted so a lost race never surfaces as an internal error.
func (b *ballot) Create(ctx context.Context, ballot model.Ballot) (model.Ballot, error) {
	result := b.db.WithContext(ctx).Create(&ballot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.Ballot{}, fmt.Errorf("%w: %v", dto.ErrAlreadyVoted, result.Error)
		}
		return model.Ballot{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return ballot, nil
}

func (b *ballot) GetByUserID(ctx context.Context, userID uint) (model.Ballot, error) {
	var found model.Ballot
	result := b.db.WithContext(ctx).Where("user_id = ?", userID).First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Ballot{}, fmt.Errorf("%w: %v", dto.ErrNotFound, result.Error)
		}
		return model.Ballot{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

// CountResults tallies the ledger per candidate, zero included. Ordering is
// deterministic: vote count descending, candidate name ascending on ties.
func (b *ballot) CountResults(ctx context.Context) ([]dto.CandidateResult, error) {
	resultsQuery := `
		SELECT c.id AS candidate_id, c.name, c.party, c.image_url,
		       COUNT(b.id) AS votes
		FROM candidates c
		LEFT JOIN ballots b ON b.candidate_id = c.id
		GROUP BY c.id, c.name, c.party, c.image_url
		ORDER BY votes DESC, c.name ASC
	`

	var results []dto.CandidateResult
	result := b.db.WithContext(ctx).Raw(resultsQuery).Scan(&results)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return results, nil
}
