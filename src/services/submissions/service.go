package submissions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-BenefitsIntake/src/jobs"
	"Backend-BenefitsIntake/src/models"
	"Backend-BenefitsIntake/src/services/uploads"
	"Backend-BenefitsIntake/src/utils"
)

// ErrDuplicateReference is returned when every generation attempt collided
// with an existing reference number.
var ErrDuplicateReference = errors.New("duplicate reference number")

// maxReferenceAttempts bounds regeneration on unique-index collisions.
const maxReferenceAttempts = 3

// Service is the intake pipeline: it resolves uploaded license images to
// storage paths, stamps each record with a reference number and creation
// time, and persists it.
type Service struct {
	collection *mongo.Collection
	uploads    *uploads.Service
	policy     ValidationPolicy
}

func NewService(db *mongo.Database, uploadSvc *uploads.Service, policy ValidationPolicy) *Service {
	if policy == nil {
		policy = OpenPolicy{}
	}
	return &Service{
		collection: db.Collection("submissions"),
		uploads:    uploadSvc,
		policy:     policy,
	}
}

// AttachLicenseFiles stores any provided identification images and replaces
// the license fields with the returned storage paths. Storage failures
// propagate; a half-attached record is never inserted.
func (s *Service) AttachLicenseFiles(submission *models.Submission, front, back *multipart.FileHeader) error {
	if front != nil {
		path, err := s.storeFile(front)
		if err != nil {
			return err
		}
		submission.DriverLicenseFront = path
	}
	if back != nil {
		path, err := s.storeFile(back)
		if err != nil {
			return err
		}
		submission.DriverLicenseBack = path
	}
	return nil
}

func (s *Service) storeFile(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	return s.uploads.Store(data, fileHeader.Filename)
}

// Create runs the intake policy, stamps the record and inserts it. On a
// reference-number collision the number is regenerated and the insert
// retried; after maxReferenceAttempts the collision surfaces as
// ErrDuplicateReference.
func (s *Service) Create(ctx context.Context, submission *models.Submission) (string, error) {
	if err := s.policy.Validate(submission); err != nil {
		return "", err
	}

	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		submission.ReferenceNumber = utils.GenerateReferenceNumber()
		submission.CreatedAt = time.Now()

		_, err := s.collection.InsertOne(ctx, submission)
		if err == nil {
			log.Printf("✅ Submission saved with reference number: %s", submission.ReferenceNumber)
			s.notifyCreated(submission.ReferenceNumber)
			return submission.ReferenceNumber, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return "", err
		}
		log.Printf("⚠️ Reference number collision on %s (attempt %d)", submission.ReferenceNumber, attempt)
	}

	return "", ErrDuplicateReference
}

// notifyCreated enqueues the post-intake stats task. Best effort: the
// submission is already durable, a queue hiccup only costs a counter tick.
func (s *Service) notifyCreated(referenceNumber string) {
	task, err := jobs.NewSubmissionCreatedTask(referenceNumber)
	if err != nil {
		log.Println("⚠️ Failed to build submission task:", err)
		return
	}
	if err := jobs.Enqueue(task); err != nil {
		log.Println("⚠️ Failed to enqueue submission task:", err)
	}
}

// ListAll returns every submission, newest first. Full materialization is the
// contract at current volumes.
func (s *Service) ListAll(ctx context.Context) ([]models.Submission, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := make([]models.Submission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
