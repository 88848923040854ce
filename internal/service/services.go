package service

import (
	"github.com/voteflow/backend/internal/client"
	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/repository"
)

type Services interface {
	Auth() AuthService
	Candidate() CandidateService
	Vote() VoteService
	Result() ResultService
}

type services struct {
	authService      AuthService
	candidateService CandidateService
	voteService      VoteService
	resultService    ResultService
}

func NewServices(repositories repository.Repositories, config dto.Config, clients client.Clients) Services {
	return &services{
		authService:      newAuthService(repositories.User(), clients.AuthClient(), clients.Mailer(), config),
		candidateService: newCandidateService(repositories.Candidate()),
		voteService:      newVoteService(repositories.Ballot(), repositories.Candidate()),
		resultService:    newResultService(repositories.Ballot()),
	}
}

func (s services) Auth() AuthService {
	return s.authService
}

func (s services) Candidate() CandidateService {
	return s.candidateService
}

func (s services) Vote() VoteService {
	return s.voteService
}

func (s services) Result() ResultService {
	return s.resultService
}
