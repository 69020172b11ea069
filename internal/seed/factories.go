package seed

import (
	"math/rand"

	"aaquestions/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Options sizes a generated dataset.
type Options struct {
	Users                 int
	Questions             int
	MaxRepliesPerQuestion int
	MaxFollowsPerQuestion int
	MaxLikesPerQuestion   int
	// Seed makes generation reproducible.
	Seed int64
}

// Factory builds consistent random datasets. Every foreign key it emits
// points at a row it generated, and child replies stay within their question.
type Factory struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
	opts  Options
}

// NewFactory creates a new Factory for opts.
func NewFactory(opts Options) *Factory {
	if opts.Users <= 0 {
		opts.Users = 10
	}
	if opts.Questions < 0 {
		opts.Questions = 0
	}
	return &Factory{
		faker: gofakeit.New(opts.Seed),
		rng:   rand.New(rand.NewSource(opts.Seed)),
		opts:  opts,
	}
}

// BuildUser constructs a user with the given id.
func (f *Factory) BuildUser(id int64) models.User {
	return models.User{
		ID:    id,
		FName: f.faker.FirstName(),
		LName: f.faker.LastName(),
	}
}

// BuildQuestion constructs a question by author.
func (f *Factory) BuildQuestion(id, authorID int64) models.Question {
	return models.Question{
		ID:       id,
		Title:    f.faker.Question(),
		Body:     f.faker.Paragraph(1, 3, 8, " "),
		AuthorID: authorID,
	}
}

// BuildReply constructs a reply to q, nested under parent when it is not nil.
func (f *Factory) BuildReply(id int64, q models.Question, parent *models.Reply, userID int64) models.Reply {
	r := models.Reply{
		ID:         id,
		QuestionID: q.ID,
		UserID:     userID,
		Body:       f.faker.Sentence(12),
	}
	if parent != nil {
		parentID := parent.ID
		r.ParentReplyID = &parentID
	}
	return r
}

// Generate builds a full dataset.
func (f *Factory) Generate() *Fixtures {
	fx := &Fixtures{}

	for i := 1; i <= f.opts.Users; i++ {
		fx.Users = append(fx.Users, f.BuildUser(int64(i)))
	}

	var replyID int64
	for i := 1; i <= f.opts.Questions; i++ {
		q := f.BuildQuestion(int64(i), f.randomUserID())
		fx.Questions = append(fx.Questions, q)

		var thread []models.Reply
		for n := f.upTo(f.opts.MaxRepliesPerQuestion); n > 0; n-- {
			replyID++
			var parent *models.Reply
			if len(thread) > 0 && f.rng.Intn(2) == 0 {
				parent = &thread[f.rng.Intn(len(thread))]
			}
			thread = append(thread, f.BuildReply(replyID, q, parent, f.randomUserID()))
		}
		fx.Replies = append(fx.Replies, thread...)

		for _, uid := range f.distinctUsers(f.upTo(f.opts.MaxFollowsPerQuestion)) {
			fx.QuestionFollows = append(fx.QuestionFollows, models.QuestionFollow{QuestionID: q.ID, UserID: uid})
		}
		for _, uid := range f.distinctUsers(f.upTo(f.opts.MaxLikesPerQuestion)) {
			fx.QuestionLikes = append(fx.QuestionLikes, models.QuestionLike{QuestionID: q.ID, UserID: uid})
		}
	}

	return fx
}

func (f *Factory) randomUserID() int64 {
	return int64(f.rng.Intn(f.opts.Users) + 1)
}

// upTo returns a count in [0, limit].
func (f *Factory) upTo(limit int) int {
	if limit <= 0 {
		return 0
	}
	return f.rng.Intn(limit + 1)
}

func (f *Factory) distinctUsers(n int) []int64 {
	if n > f.opts.Users {
		n = f.opts.Users
	}
	ids := make([]int64, 0, n)
	for _, idx := range f.rng.Perm(f.opts.Users)[:n] {
		ids = append(ids, int64(idx+1))
	}
	return ids
}
