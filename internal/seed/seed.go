// Package seed inserts development fixture data: three users with one post
// each, so a fresh environment has something to browse.
package seed

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kiosk123/user-api/internal/core/ports"
)

type fixture struct {
	name     string
	password string
	ssn      string
	post     string
}

var fixtures = []fixture{
	{name: "user1", password: "test1", ssn: "701010-1111111", post: "post1"},
	{name: "user2", password: "test2", ssn: "801111-2222222", post: "post2"},
	{name: "user3", password: "test3", ssn: "901212-1111111", post: "post3"},
}

// Run inserts the fixtures unless users already exist. Meant for the
// development environment only.
func Run(ctx context.Context, users ports.UserService, posts ports.PostService, log zerolog.Logger) error {
	existing, err := users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, f := range fixtures {
		id, err := users.Create(ctx, ports.CreateUserInput{
			Name:     f.name,
			Password: f.password,
			SSN:      f.ssn,
		})
		if err != nil {
			return err
		}
		if _, err := posts.Create(ctx, id, f.post); err != nil {
			return err
		}
	}
	log.Info().Int("users", len(fixtures)).Msg("seed data inserted")
	return nil
}
