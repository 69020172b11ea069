package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositories_ShareStore(t *testing.T) {
	store := setupFixtureStore(t)
	repos := NewRepositories(store)

	require.NotNil(t, repos.Users)
	require.NotNil(t, repos.QuestionLikes)

	ctx := context.Background()
	_, err := repos.Users.All(ctx)
	require.NoError(t, err)
	_, err = repos.Questions.All(ctx)
	require.NoError(t, err)

	// both repositories went through the single sqlite connection
	db, err := store.Conn()
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.LessOrEqual(t, sqlDB.Stats().OpenConnections, 1)
}
