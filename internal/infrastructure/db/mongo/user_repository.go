package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kiosk123/user-api/internal/core/domain"
)

const (
	collectionUsers = "users"
	collectionPosts = "posts"
)

// UserRepository persists users. It owns the user→posts cascade: posts live
// in their own collection but never outlive their owner.
type UserRepository struct {
	db    *mongo.Database
	users *mongo.Collection
	posts *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		db:    db,
		users: db.Collection(collectionUsers),
		posts: db.Collection(collectionPosts),
	}
}

// Save assigns the next user id and the join date, then inserts. Both are
// set exactly once here and never rewritten.
func (r *UserRepository) Save(ctx context.Context, u *domain.User) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionUsers)
	if err != nil {
		return 0, err
	}
	u.ID = id
	u.JoinDate = time.Now().UTC()

	if _, err := r.users.InsertOne(ctx, u); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.UserNotFoundError{ID: id}
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []*domain.User{}
	for cur.Next(ctx) {
		var u domain.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, cur.Err()
}

// Update rewrites the mutable fields only; join_date is immutable.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": u.ID},
		bson.M{"$set": bson.M{
			"name":     u.Name,
			"password": u.Password,
			"ssn":      u.SSN,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &domain.UserNotFoundError{ID: u.ID}
	}
	return nil
}

// Delete removes the user and all of its posts.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.posts.DeleteMany(ctx, bson.M{"user_id": id}); err != nil {
		return err
	}
	res, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &domain.UserNotFoundError{ID: id}
	}
	return nil
}

// EnsureIndexes creates the indexes backing post-by-user lookups.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.posts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
