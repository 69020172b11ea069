package service

import (
	"context"

	"aaquestions/internal/repository"
	"aaquestions/models"
)

// QuestionService resolves the associations of a question.
type QuestionService struct {
	users     repository.UserRepository
	replies   repository.ReplyRepository
	follows   repository.QuestionFollowRepository
	likes     repository.QuestionLikeRepository
	questions repository.QuestionRepository
	trace     tracer
}

// NewQuestionService returns a new QuestionService.
func NewQuestionService(
	users repository.UserRepository,
	questions repository.QuestionRepository,
	replies repository.ReplyRepository,
	follows repository.QuestionFollowRepository,
	likes repository.QuestionLikeRepository,
) *QuestionService {
	return &QuestionService{
		users:     users,
		questions: questions,
		replies:   replies,
		follows:   follows,
		likes:     likes,
		trace:     newTracer("QuestionService"),
	}
}

// Find returns the question with id, or nil when there is none.
func (s *QuestionService) Find(ctx context.Context, id int64) (q *models.Question, err error) {
	ctx, finish := s.trace.start(ctx, "Find")
	defer func() { finish(err) }()
	return s.questions.FindByID(ctx, id)
}

// Author returns the user who asked q. A dangling author id yields nil.
func (s *QuestionService) Author(ctx context.Context, q *models.Question) (u *models.User, err error) {
	if q == nil {
		return nil, nil
	}
	ctx, finish := s.trace.start(ctx, "Author")
	defer func() { finish(err) }()
	return s.users.FindByID(ctx, q.AuthorID)
}

// Replies returns every reply posted under q, nested or not.
func (s *QuestionService) Replies(ctx context.Context, q *models.Question) (rs []*models.Reply, err error) {
	if q == nil {
		return []*models.Reply{}, nil
	}
	ctx, finish := s.trace.start(ctx, "Replies")
	defer func() { finish(err) }()
	return s.replies.FindByQuestionID(ctx, q.ID)
}

// Followers returns the users following q.
func (s *QuestionService) Followers(ctx context.Context, q *models.Question) (us []*models.User, err error) {
	if q == nil {
		return []*models.User{}, nil
	}
	ctx, finish := s.trace.start(ctx, "Followers")
	defer func() { finish(err) }()
	return s.follows.FollowersForQuestionID(ctx, q.ID)
}

// Likers returns the users who liked q.
func (s *QuestionService) Likers(ctx context.Context, q *models.Question) (us []*models.User, err error) {
	if q == nil {
		return []*models.User{}, nil
	}
	ctx, finish := s.trace.start(ctx, "Likers")
	defer func() { finish(err) }()
	return s.likes.LikersForQuestionID(ctx, q.ID)
}

// NumLikes counts the likes on q.
func (s *QuestionService) NumLikes(ctx context.Context, q *models.Question) (n int64, err error) {
	if q == nil {
		return 0, nil
	}
	ctx, finish := s.trace.start(ctx, "NumLikes")
	defer func() { finish(err) }()
	return s.likes.NumLikesForQuestionID(ctx, q.ID)
}

// MostFollowed returns the n questions with the most followers.
func (s *QuestionService) MostFollowed(ctx context.Context, n int) (qs []*models.Question, err error) {
	ctx, finish := s.trace.start(ctx, "MostFollowed")
	defer func() { finish(err) }()
	return s.follows.MostFollowedQuestions(ctx, n)
}

// MostLiked returns the n questions with the most likes.
func (s *QuestionService) MostLiked(ctx context.Context, n int) (qs []*models.Question, err error) {
	ctx, finish := s.trace.start(ctx, "MostLiked")
	defer func() { finish(err) }()
	return s.likes.MostLikedQuestions(ctx, n)
}
