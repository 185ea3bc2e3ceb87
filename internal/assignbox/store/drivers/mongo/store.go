package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collUsers       = "users"
	collAdmins      = "admins"
	collAssignments = "assignments"

	disconnectTimeout = 5 * time.Second
)

// Store keeps each identity space and the assignments in their own
// collection of a single database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to uri and pings the primary before returning.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// WithTx runs fn directly against the store. Multi-document transactions
// need a replica set, and every write this service makes touches a single
// document, which mongo already applies atomically.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(s)
}

// ApplyMigrations creates the indexes the service relies on. Creating an
// index that already exists is a no-op.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	for _, coll := range []string{collUsers, collAdmins} {
		_, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		})
		if err != nil {
			return err
		}
	}

	_, err := s.db.Collection(collAssignments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "admin_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}

func (s *Store) Users() store.Accounts {
	return &accountsRepo{coll: s.db.Collection(collUsers)}
}

func (s *Store) Admins() store.Accounts {
	return &accountsRepo{coll: s.db.Collection(collAdmins)}
}

func (s *Store) Assignments() store.Assignments {
	return &assignmentsRepo{coll: s.db.Collection(collAssignments)}
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapDuplicate(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return errors.Join(store.ErrAlreadyExists, err)
	}
	return err
}
