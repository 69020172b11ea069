package repository

import (
	"context"
	"database/sql"

	"aaquestions/internal/database"
	"aaquestions/models"
)

// UserRepository defines read operations for users.
type UserRepository interface {
	All(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByName(ctx context.Context, fname, lname string) ([]*models.User, error)
	AverageKarma(ctx context.Context, userID int64) (float64, error)
}

const (
	userSelectAll  = `SELECT * FROM users`
	userSelectByID = `SELECT * FROM users WHERE id = ?`
	userSelectName = `SELECT * FROM users WHERE fname = ? AND lname = ?`

	// Likes received per authored question. A user without questions
	// divides by NULL and yields NULL rather than a division error.
	userAverageKarma = `
		SELECT
			CAST(COUNT(question_likes.user_id) AS FLOAT) /
				NULLIF(COUNT(DISTINCT questions.id), 0) AS average_karma
		FROM questions
		LEFT OUTER JOIN question_likes ON question_likes.question_id = questions.id
		WHERE questions.author_id = ?`
)

type userRepository struct {
	q *tableQuery
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(store *database.Store) UserRepository {
	return &userRepository{q: newTableQuery(store, "users")}
}

func (r *userRepository) All(ctx context.Context) ([]*models.User, error) {
	return selectAll[models.User](ctx, r.q, "All", userSelectAll)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return selectOne[models.User](ctx, r.q, "FindByID", userSelectByID, id)
}

func (r *userRepository) FindByName(ctx context.Context, fname, lname string) ([]*models.User, error) {
	return selectAll[models.User](ctx, r.q, "FindByName", userSelectName, fname, lname)
}

func (r *userRepository) AverageKarma(ctx context.Context, userID int64) (float64, error) {
	var karma sql.NullFloat64
	if err := r.q.selectScalar(ctx, "AverageKarma", userAverageKarma, &karma, userID); err != nil {
		return 0, err
	}
	return karma.Float64, nil
}
