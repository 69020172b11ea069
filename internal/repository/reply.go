package repository

import (
	"context"

	"aaquestions/internal/database"
	"aaquestions/models"
)

// ReplyRepository defines read operations for replies.
type ReplyRepository interface {
	All(ctx context.Context) ([]*models.Reply, error)
	FindByID(ctx context.Context, id int64) (*models.Reply, error)
	FindByUserID(ctx context.Context, userID int64) ([]*models.Reply, error)
	FindByQuestionID(ctx context.Context, questionID int64) ([]*models.Reply, error)
}

const (
	replySelectAll        = `SELECT * FROM replies`
	replySelectByID       = `SELECT * FROM replies WHERE id = ?`
	replySelectByUser     = `SELECT * FROM replies WHERE user_id = ?`
	replySelectByQuestion = `SELECT * FROM replies WHERE question_id = ?`
)

type replyRepository struct {
	q *tableQuery
}

// NewReplyRepository returns a new ReplyRepository implementation.
func NewReplyRepository(store *database.Store) ReplyRepository {
	return &replyRepository{q: newTableQuery(store, "replies")}
}

func (r *replyRepository) All(ctx context.Context) ([]*models.Reply, error) {
	return selectAll[models.Reply](ctx, r.q, "All", replySelectAll)
}

func (r *replyRepository) FindByID(ctx context.Context, id int64) (*models.Reply, error) {
	return selectOne[models.Reply](ctx, r.q, "FindByID", replySelectByID, id)
}

func (r *replyRepository) FindByUserID(ctx context.Context, userID int64) ([]*models.Reply, error) {
	return selectAll[models.Reply](ctx, r.q, "FindByUserID", replySelectByUser, userID)
}

func (r *replyRepository) FindByQuestionID(ctx context.Context, questionID int64) ([]*models.Reply, error) {
	return selectAll[models.Reply](ctx, r.q, "FindByQuestionID", replySelectByQuestion, questionID)
}
