package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	svgerrors "github.com/matzehuels/svgtree/pkg/errors"
)

// DefaultCollection is the collection scenes are stored in.
const DefaultCollection = "scenes"

// MongoStore keeps records in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to uri and uses the scenes collection of database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, svgerrors.Wrap(svgerrors.ErrCodeInternal, err, "connect mongo")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(DefaultCollection),
	}, nil
}

// Ping checks that the primary is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Put implements [Store].
func (s *MongoStore) Put(ctx context.Context, format string, data []byte) (Record, error) {
	r := Record{ID: NewID(), Format: format, Data: data, CreatedAt: time.Now().UTC().Truncate(time.Millisecond)}
	if _, err := s.coll.InsertOne(ctx, r); err != nil {
		return Record{}, svgerrors.Wrap(svgerrors.ErrCodeInternal, err, "insert scene")
	}
	return r, nil
}

// Get implements [Store].
func (s *MongoStore) Get(ctx context.Context, id string) (Record, error) {
	if err := ValidateID(id); err != nil {
		return Record{}, err
	}
	var r Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Record{}, notFound(id)
	}
	if err != nil {
		return Record{}, svgerrors.Wrap(svgerrors.ErrCodeInternal, err, "find scene %s", id)
	}
	return r, nil
}

// Delete implements [Store].
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return svgerrors.Wrap(svgerrors.ErrCodeInternal, err, "delete scene %s", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
