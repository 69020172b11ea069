package repository

import (
	"context"

	"aaquestions/internal/database"
	"aaquestions/models"
)

// QuestionLikeRepository defines read operations for question likes.
type QuestionLikeRepository interface {
	All(ctx context.Context) ([]*models.QuestionLike, error)
	Find(ctx context.Context, questionID, userID int64) (*models.QuestionLike, error)
	LikersForQuestionID(ctx context.Context, questionID int64) ([]*models.User, error)
	NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error)
	LikedQuestionsForUserID(ctx context.Context, userID int64) ([]*models.Question, error)
	MostLikedQuestions(ctx context.Context, n int) ([]*models.Question, error)
}

const (
	likeSelectAll = `SELECT * FROM question_likes`
	likeSelectOne = `SELECT * FROM question_likes WHERE question_id = ? AND user_id = ?`

	likeLikers = `
		SELECT users.*
		FROM users
		JOIN question_likes ON question_likes.user_id = users.id
		WHERE question_likes.question_id = ?`

	likeCount = `SELECT COUNT(*) AS num_likes FROM question_likes WHERE question_id = ?`

	likeLikedQuestions = `
		SELECT questions.*
		FROM questions
		JOIN question_likes ON question_likes.question_id = questions.id
		WHERE question_likes.user_id = ?`

	likeMostLiked = `
		SELECT questions.*
		FROM questions
		JOIN question_likes ON question_likes.question_id = questions.id
		GROUP BY questions.id, questions.title, questions.body, questions.author_id
		ORDER BY COUNT(DISTINCT question_likes.user_id) DESC, questions.id ASC
		LIMIT ?`
)

type questionLikeRepository struct {
	q *tableQuery
}

// NewQuestionLikeRepository returns a new QuestionLikeRepository implementation.
func NewQuestionLikeRepository(store *database.Store) QuestionLikeRepository {
	return &questionLikeRepository{q: newTableQuery(store, "question_likes")}
}

func (r *questionLikeRepository) All(ctx context.Context) ([]*models.QuestionLike, error) {
	return selectAll[models.QuestionLike](ctx, r.q, "All", likeSelectAll)
}

func (r *questionLikeRepository) Find(ctx context.Context, questionID, userID int64) (*models.QuestionLike, error) {
	return selectOne[models.QuestionLike](ctx, r.q, "Find", likeSelectOne, questionID, userID)
}

func (r *questionLikeRepository) LikersForQuestionID(ctx context.Context, questionID int64) ([]*models.User, error) {
	return selectAll[models.User](ctx, r.q, "LikersForQuestionID", likeLikers, questionID)
}

func (r *questionLikeRepository) NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error) {
	var n int64
	if err := r.q.selectScalar(ctx, "NumLikesForQuestionID", likeCount, &n, questionID); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *questionLikeRepository) LikedQuestionsForUserID(ctx context.Context, userID int64) ([]*models.Question, error) {
	return selectAll[models.Question](ctx, r.q, "LikedQuestionsForUserID", likeLikedQuestions, userID)
}

// MostLikedQuestions returns up to n questions ordered by distinct liker
// count, ties broken by ascending id.
func (r *questionLikeRepository) MostLikedQuestions(ctx context.Context, n int) ([]*models.Question, error) {
	if n <= 0 {
		return []*models.Question{}, nil
	}
	return selectAll[models.Question](ctx, r.q, "MostLikedQuestions", likeMostLiked, n)
}
