// Package api talks to the LXP learning platform over its HTTP/JSON API.
package api

import "context"

// Client is the remote-platform surface consumed by the export pipeline.
// Implementations attach the bearer token obtained by SignIn to every
// other call.
type Client interface {
	// SignIn exchanges credentials for a session token and user id.
	SignIn(ctx context.Context, login, password string) (*Session, error)

	// SubjectsPage returns one page of the user's enrolled subjects in the
	// student role. Pages are 1-based; the caller loops until
	// page == LastPage.
	SubjectsPage(ctx context.Context, userID int64, page int) (*SubjectsPage, error)

	// Subject fetches one subject with its chapters and step list.
	Subject(ctx context.Context, id int64) (*Subject, error)

	// Step fetches one full lesson record.
	Step(ctx context.Context, id int64) (*Step, error)

	// File fetches a binary resource. A relative link is resolved against
	// the platform origin; redirects are followed.
	File(ctx context.Context, link string) ([]byte, error)
}
