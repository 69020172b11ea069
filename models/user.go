// Package models contains the entity types read from the questions database.
package models

// User represents a row in the users table.
type User struct {
	ID    int64  `gorm:"column:id;primaryKey" yaml:"id" json:"id"`
	FName string `gorm:"column:fname;not null" yaml:"fname" json:"fname"`
	LName string `gorm:"column:lname;not null" yaml:"lname" json:"lname"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// Columns maps each users column to the field it decodes into.
func (u *User) Columns() map[string]any {
	return map[string]any{
		"id":    &u.ID,
		"fname": &u.FName,
		"lname": &u.LName,
	}
}
