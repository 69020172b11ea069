package repository

import (
	"context"
	"testing"

	"aaquestions/internal/seed"
	"aaquestions/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rankingFixtures gives question 3 three rows from a single user, so a plain
// row count would rank it first, and pairs questions 2/4 and 1/3 on equal
// distinct counts.
func rankingFixtures() *seed.Fixtures {
	fx := &seed.Fixtures{
		Users: []models.User{
			{ID: 1, FName: "Ada", LName: "Lovelace"},
			{ID: 2, FName: "Alan", LName: "Turing"},
			{ID: 3, FName: "Grace", LName: "Hopper"},
		},
	}
	for id := int64(1); id <= 5; id++ {
		fx.Questions = append(fx.Questions, models.Question{ID: id, Title: "t", Body: "b", AuthorID: 1})
	}

	rows := [][2]int64{
		{4, 1}, {4, 2},
		{3, 1}, {3, 1}, {3, 1},
		{2, 2}, {2, 3},
		{1, 3},
	}
	for _, r := range rows {
		fx.QuestionFollows = append(fx.QuestionFollows, models.QuestionFollow{QuestionID: r[0], UserID: r[1]})
		fx.QuestionLikes = append(fx.QuestionLikes, models.QuestionLike{QuestionID: r[0], UserID: r[1]})
	}
	return fx
}

func TestMostFollowedAndLiked_Ranking(t *testing.T) {
	store := setupStore(t, rankingFixtures())
	follows := NewQuestionFollowRepository(store)
	likes := NewQuestionLikeRepository(store)
	ctx := context.Background()

	want := []int64{2, 4, 1, 3}

	t.Run("MostFollowedQuestions", func(t *testing.T) {
		all, err := follows.MostFollowedQuestions(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, want, questionIDs(all))

		head, err := follows.MostFollowedQuestions(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, want[:3], questionIDs(head))
	})

	t.Run("MostLikedQuestions", func(t *testing.T) {
		all, err := likes.MostLikedQuestions(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, want, questionIDs(all))

		head, err := likes.MostLikedQuestions(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, want[:1], questionIDs(head))
	})

	t.Run("Duplicates do not inflate counts", func(t *testing.T) {
		n, err := likes.NumLikesForQuestionID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n, "NumLikes counts stored rows")

		followers, err := follows.FollowersForQuestionID(ctx, 4)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 2}, userIDs(followers))
	})
}
