package service

import (
	"context"

	"aaquestions/internal/repository"
	"aaquestions/models"
)

// ReplyService resolves the associations of a reply.
type ReplyService struct {
	users     repository.UserRepository
	questions repository.QuestionRepository
	replies   repository.ReplyRepository
	trace     tracer
}

// NewReplyService returns a new ReplyService.
func NewReplyService(
	users repository.UserRepository,
	questions repository.QuestionRepository,
	replies repository.ReplyRepository,
) *ReplyService {
	return &ReplyService{
		users:     users,
		questions: questions,
		replies:   replies,
		trace:     newTracer("ReplyService"),
	}
}

// Find returns the reply with id, or nil when there is none.
func (s *ReplyService) Find(ctx context.Context, id int64) (r *models.Reply, err error) {
	ctx, finish := s.trace.start(ctx, "Find")
	defer func() { finish(err) }()
	return s.replies.FindByID(ctx, id)
}

// Author returns the user who wrote r.
func (s *ReplyService) Author(ctx context.Context, r *models.Reply) (u *models.User, err error) {
	if r == nil {
		return nil, nil
	}
	ctx, finish := s.trace.start(ctx, "Author")
	defer func() { finish(err) }()
	return s.users.FindByID(ctx, r.UserID)
}

// Question returns the question r was posted under.
func (s *ReplyService) Question(ctx context.Context, r *models.Reply) (q *models.Question, err error) {
	if r == nil {
		return nil, nil
	}
	ctx, finish := s.trace.start(ctx, "Question")
	defer func() { finish(err) }()
	return s.questions.FindByID(ctx, r.QuestionID)
}

// ParentReply returns the reply r answers. Top-level replies have none and
// no query is issued for them.
func (s *ReplyService) ParentReply(ctx context.Context, r *models.Reply) (parent *models.Reply, err error) {
	if r == nil || r.IsTopLevel() {
		return nil, nil
	}
	ctx, finish := s.trace.start(ctx, "ParentReply")
	defer func() { finish(err) }()
	return s.replies.FindByID(ctx, *r.ParentReplyID)
}

// ChildReplies returns the direct answers to r. Only replies under the same
// question are considered, so a reply elsewhere that names r as parent is
// not a child.
func (s *ReplyService) ChildReplies(ctx context.Context, r *models.Reply) (children []*models.Reply, err error) {
	if r == nil {
		return []*models.Reply{}, nil
	}
	ctx, finish := s.trace.start(ctx, "ChildReplies")
	defer func() { finish(err) }()

	siblings, err := s.replies.FindByQuestionID(ctx, r.QuestionID)
	if err != nil {
		return nil, err
	}

	children = make([]*models.Reply, 0)
	for _, candidate := range siblings {
		if candidate.ParentReplyID != nil && *candidate.ParentReplyID == r.ID {
			children = append(children, candidate)
		}
	}
	return children, nil
}
