package models

// QuestionFollow is a pure join row between a question and a following user.
// The (question_id, user_id) pair is expected to be unique but nothing enforces it.
type QuestionFollow struct {
	QuestionID int64 `gorm:"column:question_id;not null;index" yaml:"question_id" json:"question_id"`
	UserID     int64 `gorm:"column:user_id;not null;index" yaml:"user_id" json:"user_id"`
}

// TableName specifies the table name for GORM
func (QuestionFollow) TableName() string {
	return "question_follows"
}

// Columns maps each question_follows column to the field it decodes into.
func (f *QuestionFollow) Columns() map[string]any {
	return map[string]any{
		"question_id": &f.QuestionID,
		"user_id":     &f.UserID,
	}
}
