package jobs

import (
	"log"

	"github.com/hibiken/asynq"

	"Backend-BenefitsIntake/src/database"
)

// StartWorker runs the task worker in the background. Requires Redis; without
// it the service still serves requests, only the stats counters go dark.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSubmissionCreated, HandleSubmissionCreatedTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Worker stopped:", err)
		}
	}()
	log.Println("✅ Worker started")
}
