package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"Backend-BenefitsIntake/src/database"
)

const (
	StatsTotalKey     = "stats:intake:total"
	statsDailyPattern = "stats:intake:2006-01-02"
)

// DailyStatsKey returns the Redis counter key for a given day.
func DailyStatsKey(t time.Time) string {
	return t.Format(statsDailyPattern)
}

// HandleSubmissionCreatedTask ticks the intake counters the admin stats
// endpoint reads. Counters are advisory, so failures are logged and retried
// by the queue.
func HandleSubmissionCreatedTask(ctx context.Context, t *asynq.Task) error {
	var payload SubmissionPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	if database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Skipping stats for:", payload.ReferenceNumber)
		return nil
	}

	pipe := database.RedisClient.Pipeline()
	pipe.Incr(ctx, StatsTotalKey)
	pipe.Incr(ctx, DailyStatsKey(time.Now()))
	if _, err := pipe.Exec(ctx); err != nil {
		log.Println("❌ Failed to update intake stats:", err)
		return err
	}

	log.Println("✅ Intake stats updated for:", payload.ReferenceNumber)
	return nil
}
