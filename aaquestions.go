// Package aaquestions is a read-only data access layer over a questions
// database of users, questions, replies, follows and likes.
//
// Open a store, then use its services to walk associations:
//
//	store, err := aaquestions.OpenFromEnv()
//	if err != nil {
//		return err
//	}
//	defer store.Close(ctx)
//
//	top, err := store.Questions.MostFollowed(ctx, 5)
package aaquestions

import (
	"aaquestions/config"
	"aaquestions/internal/bootstrap"
)

// Store owns the database handle and exposes the repositories and services.
type Store = bootstrap.Runtime

// Open builds a Store from cfg. The database is opened on first use.
func Open(cfg *config.Config) (*Store, error) {
	return bootstrap.InitRuntime(cfg)
}

// OpenFromEnv loads configuration from config files and the environment,
// then opens a Store.
func OpenFromEnv() (*Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return Open(cfg)
}
