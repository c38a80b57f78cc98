package admins

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"Backend-BenefitsIntake/src/models"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Service manages the reviewer accounts that guard the dashboard.
type Service struct {
	collection *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{collection: db.Collection("admins")}
}

// Authenticate checks the password against the stored bcrypt hash. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.Admin, error) {
	var admin models.Admin
	err := s.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&admin)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

// Create registers a new admin with a bcrypt-hashed password. The unique
// email index rejects duplicates.
func (s *Service) Create(ctx context.Context, name, email, password string) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:      name,
		Email:     strings.ToLower(email),
		Password:  string(hash),
		CreatedAt: time.Now(),
	}

	res, err := s.collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.New("admin email already registered")
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return admin, nil
}

// EnsureDefaultAdmin seeds the reviewer account from ADMIN_EMAIL and
// ADMIN_PASSWORD at startup so a fresh deployment has a working login.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set. No default admin seeded.")
		return
	}

	count, err := s.collection.CountDocuments(ctx, bson.M{"email": strings.ToLower(email)})
	if err != nil {
		log.Println("❌ Failed to check default admin:", err)
		return
	}
	if count > 0 {
		return
	}

	if _, err := s.Create(ctx, "Administrator", email, password); err != nil {
		log.Println("❌ Failed to seed default admin:", err)
		return
	}
	log.Println("✅ Default admin seeded:", strings.ToLower(email))
}
