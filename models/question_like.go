package models

// QuestionLike is a pure join row between a question and a user who liked it.
type QuestionLike struct {
	QuestionID int64 `gorm:"column:question_id;not null;index" yaml:"question_id" json:"question_id"`
	UserID     int64 `gorm:"column:user_id;not null;index" yaml:"user_id" json:"user_id"`
}

// TableName specifies the table name for GORM
func (QuestionLike) TableName() string {
	return "question_likes"
}

// Columns maps each question_likes column to the field it decodes into.
func (l *QuestionLike) Columns() map[string]any {
	return map[string]any{
		"question_id": &l.QuestionID,
		"user_id":     &l.UserID,
	}
}
