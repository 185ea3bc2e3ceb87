package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type assignmentDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Task      string    `bson:"task"`
	AdminID   string    `bson:"admin_id"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d assignmentDoc) toDomain() domain.Assignment {
	return domain.Assignment{
		ID:        d.ID,
		UserID:    d.UserID,
		Task:      d.Task,
		AdminID:   d.AdminID,
		Status:    domain.Status(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type assignmentsRepo struct {
	coll *mongo.Collection
}

func (r *assignmentsRepo) Create(ctx context.Context, a domain.Assignment) error {
	_, err := r.coll.InsertOne(ctx, assignmentDoc{
		ID:        a.ID,
		UserID:    a.UserID,
		Task:      a.Task,
		AdminID:   a.AdminID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
	})
	return mapDuplicate(err)
}

func (r *assignmentsRepo) GetByID(ctx context.Context, id string) (domain.Assignment, error) {
	var doc assignmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return domain.Assignment{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *assignmentsRepo) ListByAdmin(ctx context.Context, adminID string) ([]domain.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"admin_id": adminID}, opts)
	if err != nil {
		return nil, err
	}

	var docs []assignmentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Assignment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *assignmentsRepo) TransitionStatus(
	ctx context.Context,
	id string,
	target domain.Status,
	adminID string,
	now time.Time,
) (domain.Assignment, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$ne": string(target)},
	}
	if adminID != "" {
		filter["admin_id"] = adminID
	}
	update := bson.M{"$set": bson.M{
		"status":     string(target),
		"updated_at": now.UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc assignmentDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Assignment{}, store.ErrPrecondition
	}
	if err != nil {
		return domain.Assignment{}, err
	}
	return doc.toDomain(), nil
}
