package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/flashj/flashj/internal/api"
	"github.com/flashj/flashj/internal/config"
	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/extract"
	"github.com/flashj/flashj/internal/jobs"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/services"
	"github.com/flashj/flashj/internal/stats"
	"github.com/flashj/flashj/internal/synth"
	"github.com/flashj/flashj/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("FlashJ Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("generation_worker_count=%d", cfg.GenerationWorkers)
	log.Debug("generation_queue_size=%d", cfg.GenerationQueueSize)
	log.Debug("max_flashcards_per_run=%d", cfg.MaxFlashcards)
	log.Debug("max_mcqs_per_run=%d", cfg.MaxMCQs)
	log.Debug("quiz_length=%d", cfg.QuizLength)
	log.Debug("accuracy_window_days=%d", cfg.AccuracyWindowDays)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize worker pool
	pool := worker.NewPool(cfg.GenerationWorkers, cfg.GenerationQueueSize)

	// Initialize synthesizers and services
	vocab := synth.DefaultVocabulary()
	flashcardSynth := synth.NewFlashcardSynthesizer(vocab, synth.WithFlashcardLimit(cfg.MaxFlashcards))
	mcqSynth := synth.NewMCQSynthesizer(vocab)

	generationService := services.NewGenerationService(database, flashcardSynth, mcqSynth)
	flashcardService := services.NewFlashcardService(database)
	mcqService := services.NewMCQService(database)
	studyService := services.NewStudyService(database)
	quizService := services.NewQuizService(database, cfg.QuizLength)
	statsService := services.NewStatsService(database, stats.New(cfg.AccuracyWindowDays))
	exportService := services.NewExportService(database)
	demoService := services.NewDemoService(database)
	queue := jobs.NewWorkerQueue(pool, generationService)

	srv := &api.Server{
		DB:          database,
		Generation:  generationService,
		Flashcards:  flashcardService,
		MCQs:        mcqService,
		Study:       studyService,
		Quiz:        quizService,
		Stats:       statsService,
		Export:      exportService,
		Demo:        demoService,
		Extract:     extract.New(nil),
		Queue:       queue,
		Pool:        pool,
		CORSOrigins: strings.Split(cfg.CORSOrigins, ","),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	pool.Stop()

	log.Info("===========================================")
	log.Info("FlashJ Server Stopped")
	log.Info("===========================================")
}
