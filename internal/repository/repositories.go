package repository

import "aaquestions/internal/database"

// Repositories groups the per-table repositories sharing one store.
type Repositories struct {
	Users           UserRepository
	Questions       QuestionRepository
	Replies         ReplyRepository
	QuestionFollows QuestionFollowRepository
	QuestionLikes   QuestionLikeRepository
}

// NewRepositories builds every repository over store.
func NewRepositories(store *database.Store) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(store),
		Questions:       NewQuestionRepository(store),
		Replies:         NewReplyRepository(store),
		QuestionFollows: NewQuestionFollowRepository(store),
		QuestionLikes:   NewQuestionLikeRepository(store),
	}
}
