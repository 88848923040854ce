package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/model"
	"github.com/voteflow/backend/internal/repository"
)

type VoteService interface {
	CastVote(ctx context.Context, userID, candidateID uint) (model.Ballot, error)
	GetStatus(ctx context.Context, userID uint) (dto.VoteStatus, error)
}

type voteService struct {
	ballotRepository    repository.BallotRepository
	candidateRepository repository.CandidateRepository
}

func newVoteService(ballotRepository repository.BallotRepository, candidateRepository repository.CandidateRepository) VoteService {
	return &voteService{
		ballotRepository:    ballotRepository,
		candidateRepository: candidateRepository,
	}
}

// CastVote records the user's single ballot. The existence check is a fast
// path only: two concurrent casts for the same user both pass it, and the
// unique index on the ledger decides the race. The losing insert comes back
// as dto.ErrAlreadyVoted from the repository.
func (v *voteService) CastVote(ctx context.Context, userID, candidateID uint) (model.Ballot, error) {
	if _, err := v.candidateRepository.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return model.Ballot{}, fmt.Errorf("%w: candidate %d", dto.ErrUnknownCandidate, candidateID)
		}
		return model.Ballot{}, err
	}

	_, err := v.ballotRepository.GetByUserID(ctx, userID)
	if err == nil {
		return model.Ballot{}, fmt.Errorf("%w: user %d", dto.ErrAlreadyVoted, userID)
	}
	if !errors.Is(err, dto.ErrNotFound) {
		return model.Ballot{}, err
	}

	created, err := v.ballotRepository.Create(ctx, model.Ballot{
		UserID:      userID,
		CandidateID: candidateID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return model.Ballot{}, err
	}

	logrus.Infof("User %d voted for candidate %d", userID, candidateID)

	return created, nil
}

func (v *voteService) GetStatus(ctx context.Context, userID uint) (dto.VoteStatus, error) {
	ballot, err := v.ballotRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return dto.VoteStatus{HasVoted: false}, nil
		}
		return dto.VoteStatus{}, err
	}

	return dto.VoteStatus{HasVoted: true, CandidateID: &ballot.CandidateID}, nil
}
