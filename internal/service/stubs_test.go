package service

import (
	"context"

	"aaquestions/models"
)

type userRepoStub struct {
	findByIDFn     func(context.Context, int64) (*models.User, error)
	averageKarmaFn func(context.Context, int64) (float64, error)
}

func (s *userRepoStub) All(context.Context) ([]*models.User, error) {
	return []*models.User{}, nil
}
func (s *userRepoStub) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return s.findByIDFn(ctx, id)
}
func (s *userRepoStub) FindByName(context.Context, string, string) ([]*models.User, error) {
	return []*models.User{}, nil
}
func (s *userRepoStub) AverageKarma(ctx context.Context, id int64) (float64, error) {
	return s.averageKarmaFn(ctx, id)
}

type questionRepoStub struct {
	findByIDFn       func(context.Context, int64) (*models.Question, error)
	findByAuthorIDFn func(context.Context, int64) ([]*models.Question, error)
}

func (s *questionRepoStub) All(context.Context) ([]*models.Question, error) {
	return []*models.Question{}, nil
}
func (s *questionRepoStub) FindByID(ctx context.Context, id int64) (*models.Question, error) {
	return s.findByIDFn(ctx, id)
}
func (s *questionRepoStub) FindByAuthorID(ctx context.Context, id int64) ([]*models.Question, error) {
	return s.findByAuthorIDFn(ctx, id)
}

type replyRepoStub struct {
	findByIDFn         func(context.Context, int64) (*models.Reply, error)
	findByQuestionIDFn func(context.Context, int64) ([]*models.Reply, error)
	calls              int
}

func (s *replyRepoStub) All(context.Context) ([]*models.Reply, error) {
	return []*models.Reply{}, nil
}
func (s *replyRepoStub) FindByID(ctx context.Context, id int64) (*models.Reply, error) {
	s.calls++
	return s.findByIDFn(ctx, id)
}
func (s *replyRepoStub) FindByUserID(context.Context, int64) ([]*models.Reply, error) {
	return []*models.Reply{}, nil
}
func (s *replyRepoStub) FindByQuestionID(ctx context.Context, id int64) ([]*models.Reply, error) {
	s.calls++
	return s.findByQuestionIDFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		findByIDFn:     func(context.Context, int64) (*models.User, error) { return nil, nil },
		averageKarmaFn: func(context.Context, int64) (float64, error) { return 0, nil },
	}
}

func noopQuestionRepo() *questionRepoStub {
	return &questionRepoStub{
		findByIDFn:       func(context.Context, int64) (*models.Question, error) { return nil, nil },
		findByAuthorIDFn: func(context.Context, int64) ([]*models.Question, error) { return []*models.Question{}, nil },
	}
}

func noopReplyRepo() *replyRepoStub {
	return &replyRepoStub{
		findByIDFn:         func(context.Context, int64) (*models.Reply, error) { return nil, nil },
		findByQuestionIDFn: func(context.Context, int64) ([]*models.Reply, error) { return []*models.Reply{}, nil },
	}
}

func parent(id int64) *int64 { return &id }
