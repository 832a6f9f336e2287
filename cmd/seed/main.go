package main

import (
	"context"
	"log"
	"time"

	"campus-desk/internal/models"
	"campus-desk/internal/repository"
	"campus-desk/pkg/config"
	"campus-desk/pkg/logger"
	"campus-desk/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeds a handful of demo students and faculty so the portal can be exercised
// locally without going through the registration flow. Ids are fixed, so the
// seed is rerunnable: existing rows just fail the insert and are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	studentRepo := repository.NewStudentRepository(db, appLogger)
	facultyRepo := repository.NewFacultyRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	now := time.Now()

	faculty := []*models.Faculty{
		{
			ID:         uuid.MustParse("6f1b2a46-0c6e-4c3a-9d8e-1a2b3c4d5e6f"),
			Email:      "a.verma@campus.edu",
			FullName:   "Anita Verma",
			Department: "Computer Science",
			Phone:      "+1-555-0101",
			CreatedAt:  now,
		},
		{
			ID:         uuid.MustParse("7c2d3b57-1d7f-4d4b-8e9f-2b3c4d5e6f70"),
			Email:      "r.iyer@campus.edu",
			FullName:   "Ravi Iyer",
			Department: "Mechanical Engineering",
			Phone:      "+1-555-0102",
			CreatedAt:  now,
		},
	}

	students := []*models.Student{
		{
			ID:         uuid.MustParse("8d3e4c68-2e80-4e5c-9fa0-3c4d5e6f7081"),
			Email:      "priya.n@student.campus.edu",
			FullName:   "Priya Nair",
			Department: "Computer Science",
			RegNo:      "CS2023-014",
			CreatedAt:  now,
		},
		{
			ID:         uuid.MustParse("9e4f5d79-3f91-4f6d-a0b1-4d5e6f708192"),
			Email:      "samir.k@student.campus.edu",
			FullName:   "Samir Khan",
			Department: "Mechanical Engineering",
			RegNo:      "ME2022-031",
			CreatedAt:  now,
		},
	}

	for _, f := range faculty {
		if err := facultyRepo.Create(ctx, f); err != nil {
			appLogger.Warn("Skipping faculty row", zap.String("email", f.Email), zap.Error(err))
			continue
		}
		appLogger.Info("Seeded faculty", zap.String("email", f.Email))
	}

	for _, s := range students {
		if err := studentRepo.Create(ctx, s); err != nil {
			appLogger.Warn("Skipping student row", zap.String("email", s.Email), zap.Error(err))
			continue
		}
		appLogger.Info("Seeded student", zap.String("email", s.Email))
	}

	appLogger.Info("Database seeding completed successfully!")
}
