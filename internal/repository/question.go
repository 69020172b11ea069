package repository

import (
	"context"

	"aaquestions/internal/database"
	"aaquestions/models"
)

// QuestionRepository defines read operations for questions.
type QuestionRepository interface {
	All(ctx context.Context) ([]*models.Question, error)
	FindByID(ctx context.Context, id int64) (*models.Question, error)
	FindByAuthorID(ctx context.Context, authorID int64) ([]*models.Question, error)
}

const (
	questionSelectAll      = `SELECT * FROM questions`
	questionSelectByID     = `SELECT * FROM questions WHERE id = ?`
	questionSelectByAuthor = `SELECT * FROM questions WHERE author_id = ?`
)

type questionRepository struct {
	q *tableQuery
}

// NewQuestionRepository returns a new QuestionRepository implementation.
func NewQuestionRepository(store *database.Store) QuestionRepository {
	return &questionRepository{q: newTableQuery(store, "questions")}
}

func (r *questionRepository) All(ctx context.Context) ([]*models.Question, error) {
	return selectAll[models.Question](ctx, r.q, "All", questionSelectAll)
}

func (r *questionRepository) FindByID(ctx context.Context, id int64) (*models.Question, error) {
	return selectOne[models.Question](ctx, r.q, "FindByID", questionSelectByID, id)
}

func (r *questionRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]*models.Question, error) {
	return selectAll[models.Question](ctx, r.q, "FindByAuthorID", questionSelectByAuthor, authorID)
}
