package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore maps collections onto MongoDB collections with the document
// id stored in _id.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if uri == "" {
		return nil, errors.New("MONGODB_URI is not set")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	s := &MongoStore{client: client, db: client.Database(database)}
	if err := s.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	for collection, fields := range Indexes {
		for _, field := range fields {
			model := mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}
			if _, err := s.db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
				return fmt.Errorf("creating index %s.%s: %w", collection, field, err)
			}
		}
	}
	return nil
}

type mongoDoc struct {
	id  string
	raw bson.Raw
}

func (d mongoDoc) ID() string { return d.id }

func (d mongoDoc) DataTo(dst any) error { return bson.Unmarshal(d.raw, dst) }

func toBSON(data any) (bson.M, error) {
	b, err := bson.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MongoStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var raw bson.Raw
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return mongoDoc{id: id, raw: raw}, nil
}

func (s *MongoStore) Create(ctx context.Context, collection, id string, data any) error {
	m, err := toBSON(data)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", collection, id, err)
	}
	m["_id"] = id

	if _, err := s.db.Collection(collection).InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Set(ctx context.Context, collection, id string, data any) error {
	m, err := toBSON(data)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", collection, id, err)
	}
	m["_id"] = id

	_, err = s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, m, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	filter := bson.M{}
	for _, f := range filters {
		filter[f.Field] = f.Value
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var docs []Document
	for cur.Next(ctx) {
		raw := make(bson.Raw, len(cur.Current))
		copy(raw, cur.Current)
		id, _ := raw.Lookup("_id").StringValueOK()
		docs = append(docs, mongoDoc{id: id, raw: raw})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return docs, nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
