package service

import (
	"context"

	"aaquestions/internal/repository"
	"aaquestions/models"
)

// UserService resolves what a user wrote, follows and likes.
type UserService struct {
	users     repository.UserRepository
	questions repository.QuestionRepository
	replies   repository.ReplyRepository
	follows   repository.QuestionFollowRepository
	likes     repository.QuestionLikeRepository
	trace     tracer
}

// NewUserService returns a new UserService.
func NewUserService(
	users repository.UserRepository,
	questions repository.QuestionRepository,
	replies repository.ReplyRepository,
	follows repository.QuestionFollowRepository,
	likes repository.QuestionLikeRepository,
) *UserService {
	return &UserService{
		users:     users,
		questions: questions,
		replies:   replies,
		follows:   follows,
		likes:     likes,
		trace:     newTracer("UserService"),
	}
}

// Find returns the user with id, or nil when there is none.
func (s *UserService) Find(ctx context.Context, id int64) (u *models.User, err error) {
	ctx, finish := s.trace.start(ctx, "Find")
	defer func() { finish(err) }()
	return s.users.FindByID(ctx, id)
}

// FindByName returns every user with the given first and last name.
func (s *UserService) FindByName(ctx context.Context, fname, lname string) (us []*models.User, err error) {
	ctx, finish := s.trace.start(ctx, "FindByName")
	defer func() { finish(err) }()
	return s.users.FindByName(ctx, fname, lname)
}

func (s *UserService) AuthoredQuestions(ctx context.Context, u *models.User) (qs []*models.Question, err error) {
	if u == nil {
		return []*models.Question{}, nil
	}
	ctx, finish := s.trace.start(ctx, "AuthoredQuestions")
	defer func() { finish(err) }()
	return s.questions.FindByAuthorID(ctx, u.ID)
}

func (s *UserService) AuthoredReplies(ctx context.Context, u *models.User) (rs []*models.Reply, err error) {
	if u == nil {
		return []*models.Reply{}, nil
	}
	ctx, finish := s.trace.start(ctx, "AuthoredReplies")
	defer func() { finish(err) }()
	return s.replies.FindByUserID(ctx, u.ID)
}

func (s *UserService) FollowedQuestions(ctx context.Context, u *models.User) (qs []*models.Question, err error) {
	if u == nil {
		return []*models.Question{}, nil
	}
	ctx, finish := s.trace.start(ctx, "FollowedQuestions")
	defer func() { finish(err) }()
	return s.follows.FollowedQuestionsForUserID(ctx, u.ID)
}

func (s *UserService) LikedQuestions(ctx context.Context, u *models.User) (qs []*models.Question, err error) {
	if u == nil {
		return []*models.Question{}, nil
	}
	ctx, finish := s.trace.start(ctx, "LikedQuestions")
	defer func() { finish(err) }()
	return s.likes.LikedQuestionsForUserID(ctx, u.ID)
}

// AverageKarma is the mean number of likes across the questions u asked,
// 0 when u asked none.
func (s *UserService) AverageKarma(ctx context.Context, u *models.User) (karma float64, err error) {
	if u == nil {
		return 0, nil
	}
	ctx, finish := s.trace.start(ctx, "AverageKarma")
	defer func() { finish(err) }()
	return s.users.AverageKarma(ctx, u.ID)
}
