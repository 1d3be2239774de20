package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"tradehub/internal/database"
	"tradehub/internal/domain"
	"tradehub/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tradehub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (safe order for foreign keys)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM job_signoffs")
	db.Exec("DELETE FROM job_unlocks")
	db.Exec("DELETE FROM assignments")
	db.Exec("DELETE FROM bids")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM jobs")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	jobs := repository.NewJobRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@tradehub.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		FirstName:    "Office",
		LastName:     "Admin",
		IsVerified:   true,
	}
	mustCreate(users.Create(ctx, admin))
	log.Println("Admin created: admin@tradehub.io / admin123")

	// Contractors around central London
	contractorSeed := []struct {
		email  string
		name   string
		lat    float64
		lon    float64
		skills []string
		rate   float64
	}{
		{"dave@sparkselectric.co.uk", "Dave", 51.5155, -0.1420, []string{"electrical"}, 45},
		{"marta@plumbfast.co.uk", "Marta", 51.4975, -0.1105, []string{"plumbing", "heating"}, 52},
		{"ionut@buildright.co.uk", "Ionut", 51.5520, -0.2220, []string{"carpentry", "general"}, 38},
		{"sam@roofworks.co.uk", "Sam", 52.4862, -1.8904, []string{"roofing"}, 60},
	}
	contractors := make([]*domain.User, 0, len(contractorSeed))
	for _, c := range contractorSeed {
		hash, _ := bcrypt.GenerateFromPassword([]byte("trade123"), bcrypt.DefaultCost)
		lat, lon, rate := c.lat, c.lon, c.rate
		u := &domain.User{
			Email:        c.email,
			PasswordHash: string(hash),
			Role:         domain.RoleSubcontractor,
			FirstName:    c.name,
			Phone:        fmt.Sprintf("+44 7700 9001%02d", len(contractors)+10),
			Latitude:     &lat,
			Longitude:    &lon,
			Skills:       c.skills,
			HourlyRate:   &rate,
			IsVerified:   true,
			Status:       domain.ContractorActive,
		}
		mustCreate(users.Create(ctx, u))
		contractors = append(contractors, u)
	}
	log.Printf("%d contractors created (password trade123)", len(contractors))

	residentialHash, _ := bcrypt.GenerateFromPassword([]byte("cust123"), bcrypt.DefaultCost)
	residential := &domain.User{
		Email:        "jane@homemail.co.uk",
		PasswordHash: string(residentialHash),
		Role:         domain.RoleCustResidential,
		FirstName:    "Jane",
		LastName:     "Hollis",
		Phone:        "+44 7700 900200",
		Address:      "14 Warwick Gardens, London",
	}
	mustCreate(users.Create(ctx, residential))

	commercialHash, _ := bcrypt.GenerateFromPassword([]byte("cust123"), bcrypt.DefaultCost)
	commercial := &domain.User{
		Email:        "facilities@brightoffices.co.uk",
		PasswordHash: string(commercialHash),
		Role:         domain.RoleCustCommercial,
		FirstName:    "Bright",
		LastName:     "Offices Ltd",
		Phone:        "+44 20 7946 0812",
		Address:      "3 Finsbury Square, London",
	}
	mustCreate(users.Create(ctx, commercial))
	log.Println("Customers created (password cust123)")

	// ================== JOBS ==================
	log.Println("Creating jobs...")

	lat, lon := 51.5074, -0.1278
	budget := 600.0
	fee := 15.0
	openJob := &domain.Job{
		CustomerID:  residential.ID,
		Title:       "Replace kitchen consumer unit",
		Description: "Old fuse box tripping daily, needs a full replacement.",
		Budget:      &budget,
		Location:    "Westminster, London",
		Latitude:    &lat,
		Longitude:   &lon,
		Status:      domain.JobOpen,
		UnlockFee:   &fee,
	}
	mustCreate(jobs.Create(ctx, openJob))

	quoteJob := &domain.Job{
		CustomerID:  commercial.ID,
		Title:       "Office lighting retrofit, 2 floors",
		Description: "Swap fluorescent fittings for LED panels across two floors.",
		Location:    "Finsbury Square, London",
		Status:      domain.JobPendingQuote,
	}
	mustCreate(jobs.Create(ctx, quoteJob))

	draftJob := &domain.Job{
		CustomerID:  residential.ID,
		Title:       "Garden fence repair",
		Description: "Two panels down after the storm.",
		Location:    "Kensington, London",
		Status:      domain.JobDraft,
	}
	mustCreate(jobs.Create(ctx, draftJob))

	log.Println("Seed complete.")
}

func mustCreate(err error) {
	if err != nil {
		log.Fatal("seed failed:", err)
	}
}
