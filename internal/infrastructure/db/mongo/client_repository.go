package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seek/client-registry/internal/core/domain"
)

const clientCollection = "clients"

// ClientRepository is the MongoDB-backed client store. Soft delete is a
// deleted_at timestamp; every read path filters it out, per the repository
// contract.
type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientCollection)}
}

type clientDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Surname   string             `bson:"surname"`
	Age       int                `bson:"age"`
	BirthDate time.Time          `bson:"birth_date"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
	DeletedAt *time.Time         `bson:"deleted_at,omitempty"`
}

// activeFilter matches documents whose deleted_at is absent or null.
func activeFilter() bson.M {
	return bson.M{"deleted_at": nil}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := clientDoc{
		Name:      client.Name,
		Surname:   client.Surname,
		Age:       client.Age,
		BirthDate: client.BirthDate,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	created := *client
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never reference a stored client.
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := activeFilter()
	filter["_id"] = oid

	var doc clientDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return toClient(doc), nil
}

// FindAll returns active clients in insertion order.
func (r *ClientRepository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, activeFilter())
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []clientDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}

	clients := make([]*domain.Client, len(docs))
	for i, doc := range docs {
		clients[i] = toClient(doc)
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	oid, err := primitive.ObjectIDFromHex(client.ID)
	if err != nil {
		return domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := activeFilter()
	filter["_id"] = oid

	update := bson.M{"$set": bson.M{
		"name":       client.Name,
		"surname":    client.Surname,
		"age":        client.Age,
		"birth_date": client.BirthDate,
		"updated_at": client.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// SoftDelete stamps deleted_at on an active client. Unknown and
// already-deleted ids are silent no-ops.
func (r *ClientRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := activeFilter()
	filter["_id"] = oid

	_, err = r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}})
	if err != nil {
		return fmt.Errorf("soft delete client: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the read paths rely on.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "deleted_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toClient(doc clientDoc) *domain.Client {
	return &domain.Client{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Surname:   doc.Surname,
		Age:       doc.Age,
		BirthDate: doc.BirthDate,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		DeletedAt: doc.DeletedAt,
	}
}
