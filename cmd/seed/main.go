// Seeds a local database with a demo user and a few exam records so the
// API has data to serve during development.
package main

import (
	"context"
	"log"

	"levelcert/internal/config"
	"levelcert/internal/database"
	"levelcert/internal/logger"
	"levelcert/internal/repository"
	"levelcert/internal/repository/models"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Logger)
	l := logger.Get()
	defer l.Sync()

	db, err := database.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	users := repository.NewSQLXUserRepository(db)
	exams := repository.NewSQLXExamRepository(db)

	existing, err := users.GetByEmployeeID(ctx, "1000001")
	if err != nil {
		l.Fatal("Failed to check demo user", zap.Error(err))
	}
	if existing != nil {
		l.Info("Demo data already present, nothing to do")
		return
	}

	userID, err := users.Create(ctx, "1000001", "演示用户")
	if err != nil {
		l.Fatal("Failed to create demo user", zap.Error(err))
	}

	records := []models.ExamRecord{
		{UserID: userID, Subject: "安全规范", Score: 95, TotalQuestions: 20, CorrectCount: 19, TimeSpent: 540},
		{UserID: userID, Subject: "安全规范", Score: 85, TotalQuestions: 20, CorrectCount: 17, TimeSpent: 610},
		{UserID: userID, Subject: "工艺基础", Score: 70, TotalQuestions: 10, CorrectCount: 7, TimeSpent: 300},
	}
	for i := range records {
		if _, err := exams.InsertRecord(ctx, &records[i]); err != nil {
			l.Fatal("Failed to insert demo exam record", zap.Error(err))
		}
	}

	l.Info("Seeded demo data", zap.Int64("user_id", userID), zap.Int("exam_records", len(records)))
}
