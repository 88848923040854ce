package repository

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/voteflow/backend/internal/model"
	"gorm.io/gorm"
)

type Repositories interface {
	User() UserRepository
	Candidate() CandidateRepository
	Ballot() BallotRepository
}

type repositories struct {
	userRepository      UserRepository
	candidateRepository CandidateRepository
	ballotRepository    BallotRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	err := db.AutoMigrate(&model.User{}, &model.Candidate{}, &model.Ballot{})
	if err != nil {
		logrus.Panic(err)
	}
	userRepository := newUserRepository(db)
	candidateRepository := newCandidateRepository(db)
	ballotRepository := newBallotRepository(db)

	if err := candidateRepository.SeedDefaults(context.Background()); err != nil {
		logrus.Panic(err)
	}

	return &repositories{
		userRepository:      userRepository,
		candidateRepository: candidateRepository,
		ballotRepository:    ballotRepository,
	}
}

func (r repositories) User() UserRepository {
	return r.userRepository
}

func (r repositories) Candidate() CandidateRepository {
	return r.candidateRepository
}

func (r repositories) Ballot() BallotRepository {
	return r.ballotRepository
}
