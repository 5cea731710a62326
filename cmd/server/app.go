package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/notequiz-api/internal/config"
	"github.com/phrazzld/notequiz-api/internal/platform/postgres"
	"github.com/phrazzld/notequiz-api/internal/quiz"
	"github.com/phrazzld/notequiz-api/internal/service"
	"github.com/phrazzld/notequiz-api/internal/service/auth"
)

// application holds the shared dependencies of the HTTP server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService  auth.JWTService
	userService service.UserService
	noteService service.NoteService
	quizService service.QuizService
}

// newApplication wires stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	userStore := postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	noteStore := postgres.NewPostgresNoteStore(db, logger)

	app.userService = service.NewUserService(userStore, auth.NewBcryptVerifier(), logger)

	app.noteService, err = service.NewNoteService(noteStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create note service: %w", err)
	}

	app.quizService = service.NewQuizService(app.noteService, quiz.NewGenerator(), logger)

	return app, nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
