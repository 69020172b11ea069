// Package seed provides helpers to create test and demo data for the
// questions database. These helpers are intended for development and
// testing only; the library itself never creates or alters schema.
package seed

import (
	"fmt"

	"gorm.io/gorm"
)

// schemaStatements mirrors the tables the repositories read from.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		fname TEXT NOT NULL,
		lname TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		author_id INTEGER NOT NULL,
		FOREIGN KEY (author_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS question_follows (
		question_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		FOREIGN KEY (question_id) REFERENCES questions(id),
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS replies (
		id INTEGER PRIMARY KEY,
		question_id INTEGER NOT NULL,
		reply_id INTEGER,
		user_id INTEGER NOT NULL,
		body TEXT NOT NULL,
		FOREIGN KEY (question_id) REFERENCES questions(id),
		FOREIGN KEY (reply_id) REFERENCES replies(id),
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS question_likes (
		question_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		FOREIGN KEY (question_id) REFERENCES questions(id),
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
}

// CreateSchema creates the five tables if they do not exist yet.
func CreateSchema(db *gorm.DB) error {
	for _, stmt := range schemaStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
