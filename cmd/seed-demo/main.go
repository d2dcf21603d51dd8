package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/classumlab/classroom-backend/internal/config"
	"github.com/classumlab/classroom-backend/internal/database"
	"github.com/classumlab/classroom-backend/internal/logger"
	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/repository"
)

// Seeds a demo workspace: a few categories, classes in both active and
// archived states, and a pinned notice. Safe to re-run; existing rows are
// matched by name and kept.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := repository.NewCategoryRepository(pool)
	classRepo := repository.NewClassRepository(pool, log)
	noticeRepo := repository.NewNoticeRepository(pool)

	fmt.Println("=== Seeding demo data ===")

	categories := []string{"일반", "DesignTrack", "자격증반"}
	for _, name := range categories {
		id, err := categoryRepo.IDByName(ctx, name)
		if err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("Failed to check category")
		}
		if id != nil {
			fmt.Printf("Category %q exists (id %d)\n", name, *id)
			continue
		}
		c := &model.Category{Name: name}
		if err := categoryRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("Failed to create category")
		}
		fmt.Printf("Created category %q (id %d)\n", name, c.ID)
	}

	classes := []model.ClassInput{
		{
			Name:            "디자인 기초반",
			Category:        "DesignTrack",
			StartDate:       "2026-03-02",
			EndDate:         "2026-06-30",
			DeliveryMethods: []any{"영상보기", "과제첨삭"},
		},
		{
			Name:                 "자격증 야간반",
			Category:             "자격증반",
			AssignmentUploadTime: "same_day",
			AssignmentUploadDays: []any{"토", "일"},
		},
		{
			Name:     "지난 학기 일반반",
			Category: "일반",
			IsActive: false,
		},
	}

	for _, in := range classes {
		name := fmt.Sprintf("%v", in.Name)
		var existingID int
		err := pool.QueryRow(ctx, "SELECT id FROM classes WHERE name = $1", name).Scan(&existingID)
		switch {
		case err == nil:
			fmt.Printf("Class %q exists (id %d)\n", name, existingID)
			continue
		case !errors.Is(err, pgx.ErrNoRows):
			log.Fatal().Err(err).Str("class", name).Msg("Failed to check class")
		}

		rec, err := classRepo.Create(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("class", name).Msg("Failed to create class")
		}
		fmt.Printf("Created class %q (id %d)\n", rec.Name, rec.ID)
	}

	notice := &model.Notice{
		Title:   "데모 환경 안내",
		Content: "이 워크스페이스는 데모 데이터로 초기화되었습니다.",
		Pinned:  true,
	}
	var noticeID int
	err = pool.QueryRow(ctx, "SELECT id FROM notices WHERE title = $1", notice.Title).Scan(&noticeID)
	switch {
	case err == nil:
		fmt.Printf("Notice %q exists (id %d)\n", notice.Title, noticeID)
	case errors.Is(err, pgx.ErrNoRows):
		if err := noticeRepo.Create(ctx, notice); err != nil {
			log.Fatal().Err(err).Msg("Failed to create notice")
		}
		fmt.Printf("Created notice %q (id %d)\n", notice.Title, notice.ID)
	default:
		log.Fatal().Err(err).Msg("Failed to check notice")
	}

	fmt.Println("=== Done ===")
}
