package models

// Question represents a row in the questions table.
// AuthorID is not checked against users; a dangling author is possible.
type Question struct {
	ID       int64  `gorm:"column:id;primaryKey" yaml:"id" json:"id"`
	Title    string `gorm:"column:title;not null" yaml:"title" json:"title"`
	Body     string `gorm:"column:body;not null" yaml:"body" json:"body"`
	AuthorID int64  `gorm:"column:author_id;not null;index" yaml:"author_id" json:"author_id"`
}

// TableName specifies the table name for GORM
func (Question) TableName() string {
	return "questions"
}

// Columns maps each questions column to the field it decodes into.
func (q *Question) Columns() map[string]any {
	return map[string]any{
		"id":        &q.ID,
		"title":     &q.Title,
		"body":      &q.Body,
		"author_id": &q.AuthorID,
	}
}
