package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileUploadedPlaceholder is stored in a license field when the client only
// reports that a file was provided without uploading it through this service.
const FileUploadedPlaceholder = "File uploaded"

// Submission is one applicant's intake record. Every field is free-form text
// and optional; values are persisted exactly as received. The strict intake
// policy (when enabled) checks the `validate` tags, the open policy ignores
// them.
type Submission struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name,omitempty" json:"name" validate:"omitempty,max=200"`
	Email            string             `bson:"email,omitempty" json:"email" validate:"omitempty,email"`
	Gender           string             `bson:"gender,omitempty" json:"gender"`
	PhoneNumber      string             `bson:"phoneNumber,omitempty" json:"phoneNumber" validate:"omitempty,max=30"`
	BirthCity        string             `bson:"birthCity,omitempty" json:"birthCity"`
	SSN              string             `bson:"ssn,omitempty" json:"ssn"`
	MotherFullName   string             `bson:"motherFullName,omitempty" json:"motherFullName"`
	FatherFullName   string             `bson:"fatherFullName,omitempty" json:"fatherFullName"`
	MotherMaidenName string             `bson:"motherMaidenName,omitempty" json:"motherMaidenName"`
	PastDueAmount    string             `bson:"pastDueAmount,omitempty" json:"pastDueAmount"`
	Evicted          string             `bson:"evicted,omitempty" json:"evicted"`
	AppliedBefore    string             `bson:"appliedBefore,omitempty" json:"appliedBefore"`
	SocialSecurity   string             `bson:"socialSecurity,omitempty" json:"socialSecurity"`
	IDVerified       string             `bson:"idVerified,omitempty" json:"idVerified"`

	// Storage-relative path from the upload service, or FileUploadedPlaceholder.
	DriverLicenseFront string `bson:"driverLicenseFront,omitempty" json:"driverLicenseFront"`
	DriverLicenseBack  string `bson:"driverLicenseBack,omitempty" json:"driverLicenseBack"`

	ReferenceNumber string    `bson:"referenceNumber" json:"referenceNumber"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
