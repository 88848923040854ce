package service

import (
	"context"

	"github.com/voteflow/backend/internal/model"
	"github.com/voteflow/backend/internal/repository"
)

type CandidateService interface {
	ListCandidates(ctx context.Context) ([]model.Candidate, error)
}

type candidateService struct {
	candidateRepository repository.CandidateRepository
}

func newCandidateService(candidateRepository repository.CandidateRepository) CandidateService {
	return &candidateService{
		candidateRepository: candidateRepository,
	}
}

func (c *candidateService) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	return c.candidateRepository.List(ctx)
}
