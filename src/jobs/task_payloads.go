package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"Backend-BenefitsIntake/src/database"
)

const TypeSubmissionCreated = "submission:created"

type SubmissionPayload struct {
	ReferenceNumber string `json:"reference_number"`
}

func NewSubmissionCreatedTask(referenceNumber string) (*asynq.Task, error) {
	payload, err := json.Marshal(SubmissionPayload{ReferenceNumber: referenceNumber})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSubmissionCreated, payload), nil
}

// Enqueue hands a task to the queue. Without Redis there is no queue and the
// task is silently skipped.
func Enqueue(task *asynq.Task) error {
	if database.AsynqClient == nil {
		return nil
	}
	_, err := database.AsynqClient.Enqueue(task)
	return err
}
