package main

import (
	"context"
	"log"
	"os"
	"time"

	"tradehub/internal/database"
	"tradehub/internal/repository"
)

// Lists assigned jobs whose 72-hour booking window has lapsed without a
// scheduled date. Read-only: enforcement stays in the API, this is for
// the ops team to chase customers.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	jobs := repository.NewJobRepository(db)

	overdue, err := jobs.ListOverdueAssigned(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("overdue query failed: %v", err)
	}

	if len(overdue) == 0 {
		log.Println("no overdue assigned jobs")
		return
	}

	for _, j := range overdue {
		log.Printf("job=%d customer=%d title=%q deadline=%s",
			j.ID, j.CustomerID, j.Title, j.BookingDeadline.Format(time.RFC3339))
	}
	log.Printf("deadline report completed: overdue=%d", len(overdue))
}
