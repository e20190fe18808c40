package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/model"
)

type roomDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	model.Room `bson:",inline"`
}

func (d roomDoc) toModel() model.Room {
	room := d.Room
	room.ID = d.ID.Hex()
	return room
}

type roomRepository struct {
	coll *mongo.Collection
}

func (r *roomRepository) Create(ctx context.Context, room *model.Room) (*model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, roomDoc{Room: *room})
	if err != nil {
		return nil, err
	}
	room.ID = hexID(res.InsertedID)
	return &model.InsertResult{Acknowledged: true, InsertedID: room.ID}, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc roomDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}
	room := doc.toModel()
	return &room, nil
}

func (r *roomRepository) List(ctx context.Context, filter model.RoomFilter) ([]model.Room, error) {
	cur, err := r.coll.Find(ctx, roomQuery(filter))
	if err != nil {
		return nil, err
	}
	var docs []roomDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	rooms := make([]model.Room, 0, len(docs))
	for _, d := range docs {
		rooms = append(rooms, d.toModel())
	}
	return rooms, nil
}

func (r *roomRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*model.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"_id": oid}
	if len(fields) == 0 {
		return matchOnly(ctx, r.coll, filter)
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *roomRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *roomRepository) Count(ctx context.Context, filter model.RoomFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, roomQuery(filter))
}

func roomQuery(filter model.RoomFilter) bson.M {
	q := bson.M{}
	if filter.Category != "" {
		q["category"] = filter.Category
	}
	if filter.HostEmail != "" {
		q["host.email"] = filter.HostEmail
	}
	return q
}
