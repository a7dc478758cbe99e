package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"kuispintar/internal/config"
	"kuispintar/internal/database"
	"kuispintar/internal/domain"
	"kuispintar/internal/logger"
	"kuispintar/internal/repository"
	"kuispintar/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// seedQuestion is the file shape of one curated question. Ids are
// minted at insert time.
type seedQuestion struct {
	Level        string   `json:"level"`
	Subject      string   `json:"subject"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	AnswerText   string   `json:"answer_text"`
	Explanation  string   `json:"explanation"`
	ImageURL     string   `json:"image_url"`
}

const insertConcurrency = 8

func main() {
	seedFile := flag.String("file", "configs/seed_questions.json", "seed file path")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting curated question seeding", zap.String("file", *seedFile))

	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	raw, err := os.ReadFile(*seedFile)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("file", *seedFile), zap.Error(err))
	}

	var seeds []seedQuestion
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatal("Failed to parse seed file", zap.Error(err))
	}

	repo := repository.NewCuratedQuestionDatabaseAdapter(db)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(insertConcurrency)
	for _, seed := range seeds {
		seed := seed
		g.Go(func() error {
			rec := domain.CuratedQuestion{
				ID:           util.NewULID(),
				Level:        domain.Level(seed.Level),
				Subject:      seed.Subject,
				QuestionText: seed.QuestionText,
				Options:      seed.Options,
				AnswerText:   seed.AnswerText,
				Explanation:  seed.Explanation,
				ImageURL:     seed.ImageURL,
			}
			if !rec.Level.Valid() {
				return fmt.Errorf("seed question %q has unknown level %q", seed.QuestionText, seed.Level)
			}
			if len(rec.Options) != domain.OptionCount {
				return fmt.Errorf("seed question %q has %d options, want %d", seed.QuestionText, len(rec.Options), domain.OptionCount)
			}
			if err := repo.SaveQuestion(gctx, rec); err != nil {
				return err
			}
			log.Info("Seeded question", zap.String("id", rec.ID), zap.String("subject", rec.Subject))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Seeding completed", zap.Int("count", len(seeds)))
}
