package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/model"
)

func createVoter(t *testing.T, repositories Repositories, email string) model.User {
	t.Helper()

	user, err := repositories.User().Create(testContext(), model.User{
		Name:  "Voter " + email,
		Email: email,
	})
	require.NoError(t, err)
	return user
}

func TestBallotRepository_Create(t *testing.T) {
	t.Run("first ballot for a user succeeds", func(t *testing.T) {
		repositories := setupRepositories(t)
		user := createVoter(t, repositories, "a@x.com")
		candidates, _ := repositories.Candidate().List(testContext())

		ballot, err := repositories.Ballot().Create(testContext(), model.Ballot{
			UserID:      user.ID,
			CandidateID: candidates[0].ID,
			CreatedAt:   time.Now().UTC(),
		})

		require.NoError(t, err)
		assert.NotZero(t, ballot.ID)
	})

	t.Run("second ballot for the same user returns ErrAlreadyVoted", func(t *testing.T) {
		repositories := setupRepositories(t)
		user := createVoter(t, repositories, "a@x.com")
		candidates, _ := repositories.Candidate().List(testContext())

		_, err := repositories.Ballot().Create(testContext(), model.Ballot{
			UserID:      user.ID,
			CandidateID: candidates[0].ID,
		})
		require.NoError(t, err)

		_, err = repositories.Ballot().Create(testContext(), model.Ballot{
			UserID:      user.ID,
			CandidateID: candidates[1].ID,
		})
		assert.ErrorIs(t, err, dto.ErrAlreadyVoted)

		// The losing insert must not have changed the ledger.
		found, err := repositories.Ballot().GetByUserID(testContext(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, candidates[0].ID, found.CandidateID)
	})
}

func TestBallotRepository_GetByUserID(t *testing.T) {
	repositories := setupRepositories(t)

	_, err := repositories.Ballot().GetByUserID(testContext(), 42)
	assert.ErrorIs(t, err, dto.ErrNotFound)
}

func TestBallotRepository_CountResults(t *testing.T) {
	t.Run("candidates without ballots count zero", func(t *testing.T) {
		repositories := setupRepositories(t)

		results, err := repositories.Ballot().CountResults(testContext())
		require.NoError(t, err)
		require.Len(t, results, 3)
		for _, result := range results {
			assert.Zero(t, result.Votes)
		}
	})

	t.Run("orders by votes descending, name ascending", func(t *testing.T) {
		repositories := setupRepositories(t)
		candidates, _ := repositories.Candidate().List(testContext())

		// Two ballots for Bob, one for Charlie, none for Alice.
		for i, candidateID := range []uint{candidates[1].ID, candidates[1].ID, candidates[2].ID} {
			user := createVoter(t, repositories, string(rune('a'+i))+"@x.com")
			_, err := repositories.Ballot().Create(testContext(), model.Ballot{
				UserID:      user.ID,
				CandidateID: candidateID,
			})
			require.NoError(t, err)
		}

		results, err := repositories.Ballot().CountResults(testContext())
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, "Bob Smith", results[0].Name)
		assert.EqualValues(t, 2, results[0].Votes)
		assert.Equal(t, "Charlie Brown", results[1].Name)
		assert.EqualValues(t, 1, results[1].Votes)
		assert.Equal(t, "Alice Johnson", results[2].Name)
		assert.EqualValues(t, 0, results[2].Votes)
	})

	t.Run("sum of counts equals ledger size", func(t *testing.T) {
		repositories := setupRepositories(t)
		candidates, _ := repositories.Candidate().List(testContext())

		total := 5
		for i := 0; i < total; i++ {
			user := createVoter(t, repositories, string(rune('a'+i))+"@x.com")
			_, err := repositories.Ballot().Create(testContext(), model.Ballot{
				UserID:      user.ID,
				CandidateID: candidates[i%len(candidates)].ID,
			})
			require.NoError(t, err)
		}

		results, err := repositories.Ballot().CountResults(testContext())
		require.NoError(t, err)

		var sum int64
		for _, result := range results {
			sum += result.Votes
		}
		assert.EqualValues(t, total, sum)
	})

	t.Run("repeated calls on unchanged data return identical sequences", func(t *testing.T) {
		repositories := setupRepositories(t)
		candidates, _ := repositories.Candidate().List(testContext())

		user := createVoter(t, repositories, "a@x.com")
		_, err := repositories.Ballot().Create(testContext(), model.Ballot{
			UserID:      user.ID,
			CandidateID: candidates[0].ID,
		})
		require.NoError(t, err)

		first, err := repositories.Ballot().CountResults(testContext())
		require.NoError(t, err)
		second, err := repositories.Ballot().CountResults(testContext())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
