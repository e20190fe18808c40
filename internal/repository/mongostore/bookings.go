package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cloudstay/internal/model"
)

type bookingDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	model.Booking `bson:",inline"`
}

type bookingRepository struct {
	coll *mongo.Collection
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) (*model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, bookingDoc{Booking: *booking})
	if err != nil {
		return nil, err
	}
	booking.ID = hexID(res.InsertedID)
	return &model.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

func (r *bookingRepository) List(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error) {
	cur, err := r.coll.Find(ctx, bookingQuery(filter), options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []bookingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	bookings := make([]model.Booking, 0, len(docs))
	for _, d := range docs {
		b := d.Booking
		b.ID = d.ID.Hex()
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *bookingRepository) ListSales(ctx context.Context, filter model.BookingFilter) ([]model.Sale, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0, "date": 1, "price": 1}).
		SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := r.coll.Find(ctx, bookingQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	sales := []model.Sale{}
	if err := cur.All(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
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

func bookingQuery(filter model.BookingFilter) bson.M {
	q := bson.M{}
	if filter.GuestEmail != "" {
		q["guest.email"] = filter.GuestEmail
	}
	if filter.HostEmail != "" {
		q["host.email"] = filter.HostEmail
	}
	return q
}
