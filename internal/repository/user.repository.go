// Package repository provides the thin object-document mapping over the two
// Mongo collections. All methods take the request context and do exactly one
// round trip.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/learnhub/course-enroll/internal/constant"
	"github.com/learnhub/course-enroll/internal/model"
	"github.com/learnhub/course-enroll/pkg/database"
)

// ErrNotFound reports a lookup that matched no document.
var ErrNotFound = errors.New("document not found")

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *database.MongoDB) *UserRepository {
	return &UserRepository{coll: db.Collection(constant.UsersCollection)}
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) (bson.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, errors.New("unexpected inserted id type")
	}
	return id, nil
}

// Update replaces the stored document wholesale. Profile updates are
// read-modify-write; concurrent updates are last-write-wins.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddAppliedCourse appends courseID to the user's applied set in a single
// conditional write. $addToSet preserves insertion order for new entries and
// makes a duplicate apply a no-op even when requests interleave. Returns
// whether the course was actually added; ErrNotFound if the user is missing.
func (r *UserRepository) AddAppliedCourse(
	ctx context.Context,
	userID, courseID bson.ObjectID,
) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"appliedCourses": courseID}},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}
