package service

import (
	"context"

	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/repository"
)

type ResultService interface {
	ComputeResults(ctx context.Context) ([]dto.CandidateResult, error)
}

type resultService struct {
	ballotRepository repository.BallotRepository
}

func newResultService(ballotRepository repository.BallotRepository) ResultService {
	return &resultService{
		ballotRepository: ballotRepository,
	}
}

// ComputeResults is always derived fresh from the ledger, never cached.
func (r *resultService) ComputeResults(ctx context.Context) ([]dto.CandidateResult, error) {
	return r.ballotRepository.CountResults(ctx)
}
