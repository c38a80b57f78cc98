package utils

import (
	"fmt"
	"math/rand"
)

const (
	refPrefix   = "ERA"
	refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	refGroupLen = 5
)

// GenerateReferenceNumber produces an applicant-facing reference of the form
// ERA-XXXXX-XXXXX with each X drawn uniformly from A-Z0-9. No uniqueness is
// guaranteed here; the submissions collection enforces it with a unique index
// and the intake service retries on collision.
func GenerateReferenceNumber() string {
	return fmt.Sprintf("%s-%s-%s", refPrefix, randomGroup(), randomGroup())
}

func randomGroup() string {
	b := make([]byte, refGroupLen)
	for i := range b {
		b[i] = refAlphabet[rand.Intn(len(refAlphabet))]
	}
	return string(b)
}
