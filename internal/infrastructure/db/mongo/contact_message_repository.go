package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
)

const contactMessagesCollection = "contact_messages"

// ContactMessageRepository persists the visitor inbox.
type ContactMessageRepository struct {
	coll *mongo.Collection
}

func NewContactMessageRepository(db *mongo.Database) *ContactMessageRepository {
	return &ContactMessageRepository{coll: db.Collection(contactMessagesCollection)}
}

type mongoContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Body      string             `bson:"body"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (mm mongoContactMessage) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        mm.ID.Hex(),
		Name:      mm.Name,
		Email:     mm.Email,
		Subject:   mm.Subject,
		Body:      mm.Body,
		CreatedAt: unixToTime(mm.CreatedAt),
		UpdatedAt: unixToTime(mm.UpdatedAt),
	}
}

func (r *ContactMessageRepository) Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoContactMessage{
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.Unix(),
		UpdatedAt: m.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ContactMessageRepository) FindByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mm mongoContactMessage
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find contact message: %w", err)
	}
	return mm.toDomain(), nil
}

func (r *ContactMessageRepository) FindAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find contact messages: %w", err)
	}
	defer cur.Close(ctx)

	return decodeMessages(ctx, cur)
}

func (r *ContactMessageRepository) Update(ctx context.Context, m *domain.ContactMessage) error {
	oid, err := primitive.ObjectIDFromHex(m.ID)
	if err != nil {
		return domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":       m.Name,
		"email":      m.Email,
		"subject":    m.Subject,
		"body":       m.Body,
		"updated_at": time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update contact message: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *ContactMessageRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *ContactMessageRepository) List(ctx context.Context, page ports.PageRequest) ([]*domain.ContactMessage, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count contact messages: %w", err)
	}

	opts := options.Find().
		SetSort(sortSpec(contactMessageSortFields, page)).
		SetSkip(page.Offset()).
		SetLimit(int64(page.Size))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}
	defer cur.Close(ctx)

	out, err := decodeMessages(ctx, cur)
	return out, total, err
}

func decodeMessages(ctx context.Context, cur *mongo.Cursor) ([]*domain.ContactMessage, error) {
	var out []*domain.ContactMessage
	for cur.Next(ctx) {
		var mm mongoContactMessage
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode contact message: %w", err)
		}
		out = append(out, mm.toDomain())
	}
	return out, cur.Err()
}

// contactMessageSortFields maps external sort field names to document fields.
var contactMessageSortFields = map[string]string{
	"id":        "_id",
	"name":      "name",
	"email":     "email",
	"subject":   "subject",
	"createdAt": "created_at",
}
