package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kiosk123/user-api/internal/core/domain"
)

// PostRepository persists posts, always queried within an owning user.
type PostRepository struct {
	db    *mongo.Database
	posts *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{db: db, posts: db.Collection(collectionPosts)}
}

// Save assigns the next post id and both timestamps, then inserts.
func (r *PostRepository) Save(ctx context.Context, p *domain.Post) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionPosts)
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	p.ID = id
	p.CreateDate = now
	p.UpdateDate = now

	if _, err := r.posts.InsertOne(ctx, p); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostRepository) FindByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.posts.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []*domain.Post{}
	for cur.Next(ctx) {
		var p domain.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, cur.Err()
}

func (r *PostRepository) FindByUserAndID(ctx context.Context, userID, postID int64) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Post
	err := r.posts.FindOne(ctx, bson.M{"_id": postID, "user_id": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.PostNotFoundError{UserID: userID, PostID: postID}
		}
		return nil, err
	}
	return &p, nil
}

// Update rewrites the description and update date in one document write, so
// the mutation is atomic from the caller's perspective.
func (r *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.posts.UpdateOne(ctx,
		bson.M{"_id": p.ID, "user_id": p.UserID},
		bson.M{"$set": bson.M{
			"description": p.Description,
			"update_date": p.UpdateDate,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &domain.PostNotFoundError{UserID: p.UserID, PostID: p.ID}
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, p *domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.posts.DeleteOne(ctx, bson.M{"_id": p.ID, "user_id": p.UserID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &domain.PostNotFoundError{UserID: p.UserID, PostID: p.ID}
	}
	return nil
}
