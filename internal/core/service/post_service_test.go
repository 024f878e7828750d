package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kiosk123/user-api/internal/core/domain"
)

type memPostRepo struct {
	posts  map[int64]*domain.Post
	nextID int64
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[int64]*domain.Post)}
}

func (r *memPostRepo) Save(_ context.Context, p *domain.Post) (int64, error) {
	r.nextID++
	p.ID = r.nextID
	now := time.Now().UTC()
	p.CreateDate = now
	p.UpdateDate = now
	r.posts[p.ID] = p
	return p.ID, nil
}

func (r *memPostRepo) FindByUser(_ context.Context, userID int64) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if p, ok := r.posts[id]; ok && p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPostRepo) FindByUserAndID(_ context.Context, userID, postID int64) (*domain.Post, error) {
	p, ok := r.posts[postID]
	if !ok || p.UserID != userID {
		return nil, &domain.PostNotFoundError{UserID: userID, PostID: postID}
	}
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) Update(_ context.Context, p *domain.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return &domain.PostNotFoundError{UserID: p.UserID, PostID: p.ID}
	}
	r.posts[p.ID] = p
	return nil
}

func (r *memPostRepo) Delete(_ context.Context, p *domain.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return &domain.PostNotFoundError{UserID: p.UserID, PostID: p.ID}
	}
	delete(r.posts, p.ID)
	return nil
}

func postFixture(t *testing.T) (*PostService, *memPostRepo, *captureRecorder, int64) {
	t.Helper()
	users := newMemUserRepo()
	uid, err := users.Save(context.Background(), &domain.User{Name: "user1"})
	if err != nil {
		t.Fatalf("save user: %v", err)
	}
	posts := newMemPostRepo()
	audit := &captureRecorder{}
	return NewPostService(posts, users, audit, zerolog.Nop()), posts, audit, uid
}

func TestPostService_CreateForMissingUser(t *testing.T) {
	svc, _, _, _ := postFixture(t)

	_, err := svc.Create(context.Background(), 999, "orphan")
	var notFound *domain.UserNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected UserNotFoundError, got %v", err)
	}
}

func TestPostService_Create(t *testing.T) {
	svc, repo, audit, uid := postFixture(t)

	id, err := svc.Create(context.Background(), uid, "first")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stored := repo.posts[id]
	if stored.UserID != uid || stored.Description != "first" {
		t.Fatalf("unexpected stored post %+v", stored)
	}
	if stored.CreateDate.IsZero() || !stored.CreateDate.Equal(stored.UpdateDate) {
		t.Fatalf("timestamps must be set and equal at creation: %+v", stored)
	}
	if last := audit.events[len(audit.events)-1]; last.Action != "post.created" || last.PostID != id {
		t.Fatalf("expected post.created event, got %+v", last)
	}
}

func TestPostService_UpdateAdvancesUpdateDate(t *testing.T) {
	svc, repo, _, uid := postFixture(t)

	id, err := svc.Create(context.Background(), uid, "first")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created := repo.posts[id].CreateDate

	time.Sleep(2 * time.Millisecond)
	updated, err := svc.Update(context.Background(), uid, id, "edited")
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Description != "edited" {
		t.Fatalf("description not applied: %+v", updated)
	}
	if !updated.CreateDate.Equal(created) {
		t.Fatal("create date must never change")
	}
	if !updated.UpdateDate.After(created) {
		t.Fatalf("update date did not advance: %v vs %v", updated.UpdateDate, created)
	}
}

func TestPostService_UpdateMissingPost(t *testing.T) {
	svc, _, _, uid := postFixture(t)

	_, err := svc.Update(context.Background(), uid, 42, "ghost")
	var notFound *domain.PostNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected PostNotFoundError, got %v", err)
	}
	if notFound.UserID != uid || notFound.PostID != 42 {
		t.Fatalf("unexpected ids in %v", notFound)
	}
}

func TestPostService_MissingUserWinsOverMissingPost(t *testing.T) {
	svc, _, _, _ := postFixture(t)

	_, err := svc.Update(context.Background(), 999, 42, "x")
	var userNotFound *domain.UserNotFoundError
	if !errors.As(err, &userNotFound) {
		t.Fatalf("expected UserNotFoundError to take precedence, got %v", err)
	}
}

func TestPostService_DeleteMissingPost(t *testing.T) {
	svc, _, _, uid := postFixture(t)

	err := svc.Delete(context.Background(), uid, 42)
	var notFound *domain.PostNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected PostNotFoundError, got %v", err)
	}
}

func TestPostService_Delete(t *testing.T) {
	svc, repo, audit, uid := postFixture(t)

	id, err := svc.Create(context.Background(), uid, "first")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), uid, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.posts[id]; ok {
		t.Fatal("post still present after delete")
	}
	if last := audit.events[len(audit.events)-1]; last.Action != "post.deleted" {
		t.Fatalf("expected post.deleted event, got %+v", last)
	}
}
