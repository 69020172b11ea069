package repository

import (
	"context"

	"aaquestions/internal/database"
	"aaquestions/models"
)

// QuestionFollowRepository defines read operations for question follows and
// the user/question lookups that go through them.
type QuestionFollowRepository interface {
	All(ctx context.Context) ([]*models.QuestionFollow, error)
	Find(ctx context.Context, questionID, userID int64) (*models.QuestionFollow, error)
	FollowersForQuestionID(ctx context.Context, questionID int64) ([]*models.User, error)
	FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]*models.Question, error)
	MostFollowedQuestions(ctx context.Context, n int) ([]*models.Question, error)
}

const (
	followSelectAll = `SELECT * FROM question_follows`
	followSelectOne = `SELECT * FROM question_follows WHERE question_id = ? AND user_id = ?`

	followFollowers = `
		SELECT users.*
		FROM users
		JOIN question_follows ON question_follows.user_id = users.id
		WHERE question_follows.question_id = ?`

	followFollowedQuestions = `
		SELECT questions.*
		FROM questions
		JOIN question_follows ON question_follows.question_id = questions.id
		WHERE question_follows.user_id = ?`

	followMostFollowed = `
		SELECT questions.*
		FROM questions
		JOIN question_follows ON question_follows.question_id = questions.id
		GROUP BY questions.id, questions.title, questions.body, questions.author_id
		ORDER BY COUNT(DISTINCT question_follows.user_id) DESC, questions.id ASC
		LIMIT ?`
)

type questionFollowRepository struct {
	q *tableQuery
}

// NewQuestionFollowRepository returns a new QuestionFollowRepository implementation.
func NewQuestionFollowRepository(store *database.Store) QuestionFollowRepository {
	return &questionFollowRepository{q: newTableQuery(store, "question_follows")}
}

func (r *questionFollowRepository) All(ctx context.Context) ([]*models.QuestionFollow, error) {
	return selectAll[models.QuestionFollow](ctx, r.q, "All", followSelectAll)
}

func (r *questionFollowRepository) Find(ctx context.Context, questionID, userID int64) (*models.QuestionFollow, error) {
	return selectOne[models.QuestionFollow](ctx, r.q, "Find", followSelectOne, questionID, userID)
}

func (r *questionFollowRepository) FollowersForQuestionID(ctx context.Context, questionID int64) ([]*models.User, error) {
	return selectAll[models.User](ctx, r.q, "FollowersForQuestionID", followFollowers, questionID)
}

func (r *questionFollowRepository) FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]*models.Question, error) {
	return selectAll[models.Question](ctx, r.q, "FollowedQuestionsForUserID", followFollowedQuestions, userID)
}

// MostFollowedQuestions returns up to n questions ordered by distinct
// follower count, ties broken by ascending id. Questions nobody follows are
// never included.
func (r *questionFollowRepository) MostFollowedQuestions(ctx context.Context, n int) ([]*models.Question, error) {
	if n <= 0 {
		return []*models.Question{}, nil
	}
	return selectAll[models.Question](ctx, r.q, "MostFollowedQuestions", followMostFollowed, n)
}
