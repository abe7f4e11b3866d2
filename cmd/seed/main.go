package main

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"bookreviews/internal/auth"
	"bookreviews/internal/config"
	"bookreviews/internal/db"
	"bookreviews/internal/model"
	"bookreviews/internal/repository"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "secret1"
)

var demoReviews = []model.Review{
	{
		Title:       "The Pragmatic Programmer",
		Author:      "David Thomas, Andrew Hunt",
		Description: "Journeyman to master.",
		Opinion:     "Still holds up, the tips chapters especially.",
		ReviewDate:  "2024-01-15",
		ISBN:        "9780135957059",
		Rating:      5,
	},
	{
		Title:       "Piranesi",
		Author:      "Susanna Clarke",
		Description: "The House, its halls, its tides.",
		Opinion:     "Slow start, stunning second half.",
		ReviewDate:  "2024-03-02",
		ISBN:        "9781635575637",
		Rating:      4,
	},
	{
		Title:      "Project Hail Mary",
		Author:     "Andy Weir",
		ReviewDate: "2024-04-20",
		ISBN:       "9780593135204",
		Rating:     4,
	},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Review{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	ctx := context.Background()

	user, err := seedUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	seeded, err := seedReviews(ctx, reviewRepo, user.ID)
	if err != nil {
		log.Fatalf("Failed to seed reviews: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Demo user: %s (id %d, password %q)", user.Email, user.ID, demoPassword)
	log.Printf("  - Reviews created: %d", seeded)
}

// seedUser creates the demo user, or returns the existing one so the script
// can be rerun safely.
func seedUser(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, demoEmail)
	if err == nil {
		log.Printf("Demo user %s already exists, reusing it", demoEmail)
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        demoEmail,
		PasswordHash: hash,
		CreatedOn:    time.Now(),
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// seedReviews inserts the demo reviews for the user unless it already has some.
func seedReviews(ctx context.Context, repo repository.ReviewRepository, userID uint) (int, error) {
	existing, err := repo.ListByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Demo user already has %d reviews, skipping", len(existing))
		return 0, nil
	}

	seeded := 0
	for _, review := range demoReviews {
		review.UserID = userID
		if err := repo.Create(ctx, &review); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
