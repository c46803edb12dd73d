package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carzone/spareparts-shop/shared/models"
)

// MongoStore wraps the process-wide MongoDB client. The client is
// established once at startup and shared by all in-flight requests; the
// driver handles synchronization.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}
}

// CreateDocument inserts a validated payload into the named collection and
// returns the assigned id in its external hex form.
func (s *MongoStore) CreateDocument(ctx context.Context, collection string, payload any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetDocuments decodes at most limit documents matching filter into out, in
// the store's natural order. The filter is passed through unmodified.
func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter any, limit int64, out any) error {
	cur, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return fmt.Errorf("query %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// GetDocumentByID decodes the one document with the given hex id into out.
// A malformed id yields ErrInvalidID, a missing document ErrNotFound.
func (s *MongoStore) GetDocumentByID(ctx context.Context, collection string, id string, out any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) CreatePart(ctx context.Context, part models.SparePart) (string, error) {
	return s.CreateDocument(ctx, models.CollectionSparePart, part)
}

func (s *MongoStore) FindParts(ctx context.Context, filter PartFilter) ([]models.SparePart, error) {
	parts := []models.SparePart{}
	if err := s.GetDocuments(ctx, models.CollectionSparePart, filter.BSON(), filter.EffectiveLimit(), &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

func (s *MongoStore) GetPart(ctx context.Context, id string) (*models.SparePart, error) {
	var part models.SparePart
	if err := s.GetDocumentByID(ctx, models.CollectionSparePart, id, &part); err != nil {
		return nil, err
	}
	return &part, nil
}

func (s *MongoStore) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	return s.CreateDocument(ctx, models.CollectionOrder, order)
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
