package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentacar/rentacar-api/internal/core/domain"
)

// SeedConfig carries the built-in admin account created at startup.
// Seeding the admin is skipped when AdminPassword is empty.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// Seed prepares the database for serving: the unique email index, the two
// static roles, and the built-in admin account. Every write is an upsert so
// restarting the process never duplicates or overwrites existing data.
func Seed(ctx context.Context, db *mongo.Database, cfg SeedConfig, log zerolog.Logger) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("seed: ensure indexes: %w", err)
	}

	roles := db.Collection(rolesCollection)
	for _, name := range []domain.RoleName{domain.RoleCustomer, domain.RoleAdmin} {
		_, err := roles.UpdateOne(ctx,
			bson.M{"name": string(name)},
			bson.M{"$setOnInsert": bson.M{"name": string(name)}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed: role %s: %w", name, err)
		}
	}

	if cfg.AdminPassword == "" {
		log.Warn().Msg("no admin password configured, skipping built-in admin seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		FirstName:    "Built-in",
		LastName:     "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		BuiltIn:      true,
		Roles:        []domain.RoleName{domain.RoleAdmin, domain.RoleCustomer},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	doc := toMongoUser(admin)
	res, err := db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"email": cfg.AdminEmail},
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("seed: admin user: %w", err)
	}
	if res.UpsertedCount > 0 {
		log.Info().Str("email", cfg.AdminEmail).Msg("built-in admin account created")
	}
	return nil
}
