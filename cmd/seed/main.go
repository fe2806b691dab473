// Herramienta de desarrollo: siembra perfiles de demostracion para probar
// el discovery y el flujo admire/pass contra una base local.
package main

import (
	"context"
	"log"
	"time"

	"github.com/alimalikali/pup-vision-sub000/internal/config"
	"github.com/alimalikali/pup-vision-sub000/internal/db"
	"github.com/alimalikali/pup-vision-sub000/internal/domain"
	"github.com/alimalikali/pup-vision-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type seedSpec struct {
	gender    string
	ageYears  int
	city      string
	state     string
	education string
	purpose   [3]string
	interests []string
}

var seeds = []seedSpec{
	{"FEMALE", 26, "Lahore", "Punjab", domain.EducationBachelors, [3]string{"FAITH", "TEACHER", "COMMUNITY"}, []string{"reading", "hiking"}},
	{"MALE", 29, "Lahore", "Punjab", domain.EducationMasters, [3]string{"FAITH", "TEACHER", "COMMUNITY"}, []string{"reading", "coding"}},
	{"FEMALE", 31, "Karachi", "Sindh", domain.EducationMasters, [3]string{"SCIENCE", "BUILDER", "SOLO"}, []string{"chess", "running"}},
	{"MALE", 24, "Karachi", "Sindh", domain.EducationHighSchool, [3]string{"ART", "HEALER", "COMMUNITY"}, []string{"painting", "music"}},
	{"FEMALE", 27, "Islamabad", "ICT", domain.EducationPhD, [3]string{"SCIENCE", "TEACHER", "SOLO"}, []string{"reading", "chess"}},
	{"MALE", 35, "Multan", "Punjab", domain.EducationSelfTaught, [3]string{"FAITH", "BUILDER", "COMMUNITY"}, []string{"hiking", "cooking"}},
	{"FEMALE", 22, "Lahore", "Punjab", domain.EducationSecondary, [3]string{"ART", "TEACHER", "COMMUNITY"}, []string{"music", "painting"}},
	{"MALE", 40, "Peshawar", "KP", domain.EducationBachelors, [3]string{"SERVICE", "HEALER", "SOLO"}, []string{"volunteering", "reading"}},
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	repo := repository.NewPgProfileRepository(pool)
	now := time.Now().UTC()

	for i, spec := range seeds {
		dob := now.AddDate(-spec.ageYears, 0, -7)
		profile := domain.Profile{
			UserID:           uuid.NewString(),
			Gender:           spec.gender,
			DOB:              &dob,
			City:             spec.city,
			State:            spec.state,
			Country:          "PK",
			Education:        spec.education,
			Profession:       "ENGINEER",
			PurposeDomain:    spec.purpose[0],
			PurposeArchetype: spec.purpose[1],
			PurposeModality:  spec.purpose[2],
			Interests:        spec.interests,
			Smoke:            "NEVER",
			Alcohol:          "NEVER",
			Drugs:            "NEVER",
			AdmiredUsers:     []string{},
			AdmiredBy:        []string{},
			IsActive:         true,
			CreatedAt:        now.Add(time.Duration(i) * time.Second),
			UpdatedAt:        now.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Create(ctx, profile); err != nil {
			logger.Fatal("seed profile", zap.Error(err), zap.String("user_id", profile.UserID))
		}
		logger.Info("seeded profile",
			zap.String("user_id", profile.UserID),
			zap.String("city", profile.City),
			zap.String("purpose_domain", profile.PurposeDomain),
		)
	}

	logger.Info("seeding done", zap.Int("profiles", len(seeds)))
}
