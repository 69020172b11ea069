package models

// Reply represents a row in the replies table. Replies form a tree per
// question: ParentReplyID is nil for a top-level reply and otherwise points
// at another reply of the same question.
type Reply struct {
	ID            int64  `gorm:"column:id;primaryKey" yaml:"id" json:"id"`
	QuestionID    int64  `gorm:"column:question_id;not null;index" yaml:"question_id" json:"question_id"`
	ParentReplyID *int64 `gorm:"column:reply_id;index" yaml:"reply_id" json:"reply_id,omitempty"`
	UserID        int64  `gorm:"column:user_id;not null;index" yaml:"user_id" json:"user_id"`
	Body          string `gorm:"column:body;not null" yaml:"body" json:"body"`
}

// TableName specifies the table name for GORM
func (Reply) TableName() string {
	return "replies"
}

// Columns maps each replies column to the field it decodes into.
func (r *Reply) Columns() map[string]any {
	return map[string]any{
		"id":          &r.ID,
		"question_id": &r.QuestionID,
		"reply_id":    &r.ParentReplyID,
		"user_id":     &r.UserID,
		"body":        &r.Body,
	}
}

// IsTopLevel reports whether the reply answers the question directly.
func (r *Reply) IsTopLevel() bool {
	return r.ParentReplyID == nil
}
