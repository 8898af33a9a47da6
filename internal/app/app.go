package app

import (
	"levelcert/internal/config"
	"levelcert/internal/dto"
	"levelcert/internal/handler"
	"levelcert/internal/middleware"
	"levelcert/internal/repository"
	"levelcert/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
)

// New wires repositories, services and handlers onto a fiber app. Shared by
// cmd/api and the integration tests.
func New(cfg *config.Config, db *sqlx.DB) *fiber.App {
	userRepository := repository.NewSQLXUserRepository(db)
	examRepository := repository.NewSQLXExamRepository(db)
	wrongQuestionRepository := repository.NewSQLXWrongQuestionRepository(db)
	noteRepository := repository.NewSQLXNoteRepository(db)
	statsRepository := repository.NewSQLXStatsRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	authService := service.NewAuthService(userRepository, examRepository, wrongQuestionRepository, noteRepository, txManager)
	examService := service.NewExamService(userRepository, examRepository, txManager, cfg)
	reviewService := service.NewReviewService(userRepository, wrongQuestionRepository, noteRepository)
	statsService := service.NewStatsService(statsRepository, cfg)

	authHandler := handler.NewAuthHandler(authService)
	examHandler := handler.NewExamHandler(examService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	statsHandler := handler.NewStatsHandler(statsService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	api := app.Group("/api")

	api.Get("/health", handler.Health)

	api.Post("/login", authHandler.Login)
	api.Post("/register", authHandler.Register)
	api.Post("/delete-account", authHandler.DeleteAccount)

	api.Get("/wrong-questions", reviewHandler.ListWrongQuestions)
	api.Post("/wrong-questions/upsert", reviewHandler.UpsertWrongQuestion)
	api.Post("/wrong-questions/delete", reviewHandler.DeleteWrongQuestion)

	api.Get("/notes", reviewHandler.ListNotes)
	api.Post("/notes/upsert", reviewHandler.UpsertNote)
	api.Post("/notes/delete", reviewHandler.DeleteNote)

	api.Post("/save-exam", examHandler.SaveExam)
	api.Get("/user-exams", examHandler.ListUserExams)
	api.Get("/exam-history", examHandler.GetExamHistory)

	api.Get("/stats", statsHandler.GetStats)

	// Anything that falls through the route table
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Not found"})
	})

	return app
}
