package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/model"
)

type userDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	model.User `bson:",inline"`
}

func (d userDoc) toModel() model.User {
	u := d.User
	u.ID = d.ID.Hex()
	return u
}

type userRepository struct {
	coll *mongo.Collection
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	user := doc.toModel()
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toModel())
	}
	return users, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *model.User) (*model.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		upsertUpdate(user),
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	if res.UpsertedID != nil {
		user.ID = hexID(res.UpsertedID)
	}
	return updateResult(res), nil
}

// upsertUpdate overwrites the stored profile with the non-empty fields of user.
func upsertUpdate(user *model.User) bson.M {
	return bson.M{"$set": user}
}

func (r *userRepository) UpdateFields(ctx context.Context, email string, fields map[string]any) (*model.UpdateResult, error) {
	filter := bson.M{"email": email}
	if len(fields) == 0 {
		return matchOnly(ctx, r.coll, filter)
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func updateResult(res *mongo.UpdateResult) *model.UpdateResult {
	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    hexID(res.UpsertedID),
	}
}

// matchOnly answers an update with nothing to set.
func matchOnly(ctx context.Context, coll *mongo.Collection, filter bson.M) (*model.UpdateResult, error) {
	n, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return nil, err
	}
	return &model.UpdateResult{Acknowledged: true, MatchedCount: n}, nil
}
