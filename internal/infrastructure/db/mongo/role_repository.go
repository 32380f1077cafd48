package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentacar/rentacar-api/internal/core/domain"
)

const rolesCollection = "roles"

// RoleRepository reads the seeded role reference data. Roles are written only
// by the startup seeder; at runtime they are read-only.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

type mongoRole struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (r *RoleRepository) FindByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoRole
	if err := r.coll.FindOne(ctx, bson.M{"name": string(name)}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}

	return &domain.Role{ID: mr.ID.Hex(), Name: domain.RoleName(mr.Name)}, nil
}
