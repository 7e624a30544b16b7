package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusconnect/internal/config"
	"campusconnect/internal/faceclient"
	"campusconnect/internal/queue"
	"campusconnect/internal/roster"
	"campusconnect/internal/session"
	"campusconnect/internal/store"
)

// Worker consumes camera verification jobs, calls the face service, and
// confirms the verification on the live session document.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	var docs store.Store
	if cfg.StoreBackend == "memory" {
		docs = store.NewMemory()
	} else {
		db, err := store.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer db.Close()
		docs = store.NewPostgres(db.Client)
	}

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "campusconnect:verifications")
	}

	people := roster.NewService(docs)
	sessions := session.NewManager(docs, people, nil)
	face := faceclient.New(cfg.FaceServiceURL, cfg.FaceSkip)

	// Check face service health on startup
	if !cfg.FaceSkip {
		if err := face.Health(ctx); err != nil {
			log.Printf("WARNING: Face service not available: %v", err)
			log.Println("Worker will retry verification when jobs arrive")
		} else {
			log.Println("Face service connected")
		}
	}

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("worker started, waiting for verification jobs...")
	for msg := range messages {
		if msg.Type != queue.TypeCameraVerify {
			continue
		}

		var job session.VerifyJob
		if err := json.Unmarshal(msg.Body, &job); err != nil {
			log.Printf("bad verify job payload: %v", err)
			continue
		}
		log.Printf("verifying student %s in %s", job.StudentID, job.SessionID)

		live, err := face.Liveness(ctx, job.ImageURL)
		if err != nil {
			log.Printf("liveness check failed for %s: %v", job.StudentID, err)
			continue
		}
		if !live.IsLive {
			log.Printf("student %s failed liveness (confidence %.2f)", job.StudentID, live.Confidence)
			continue
		}

		result, err := face.Verify(ctx, job.StudentID, job.ImageURL)
		if err != nil {
			log.Printf("face verify failed for %s: %v", job.StudentID, err)
			continue
		}
		if !result.Verified {
			log.Printf("student %s not verified (similarity %.2f)", job.StudentID, result.Similarity)
			continue
		}

		sessions.ConfirmRFID(ctx, job.SessionID, job.StudentID)
		log.Printf("student %s verified (similarity %.2f)", job.StudentID, result.Similarity)

		time.Sleep(10 * time.Millisecond) // Small delay between jobs
	}

	log.Println("worker stopped")
}
