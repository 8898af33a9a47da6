package models

import "database/sql"

// User is a row in the users table. Identity is the (id, employee_id) pair.
type User struct {
	ID         int64  `db:"id"`
	EmployeeID string `db:"employee_id"`
	Name       string `db:"name"`
}

// ExamRecord is one completed quiz attempt. Immutable once inserted.
type ExamRecord struct {
	ID             int64   `db:"id"`
	UserID         int64   `db:"user_id"`
	Subject        string  `db:"subject"`
	Score          float64 `db:"score"`
	TotalQuestions int     `db:"total_questions"`
	CorrectCount   int     `db:"correct_count"`
	TimeSpent      int     `db:"time_spent"`
}

// ExamSummary is an exam_records row annotated with the user's best score
// in the same subject. Display timestamps come back shifted from the query,
// so they stay strings.
type ExamSummary struct {
	ID             int64   `db:"id"`
	Subject        string  `db:"subject"`
	Score          float64 `db:"score"`
	TotalQuestions int     `db:"total_questions"`
	CorrectCount   int     `db:"correct_count"`
	TimeSpent      int     `db:"time_spent"`
	ExamDate       string  `db:"exam_date"`
	BestScore      float64 `db:"best_score"`
}

// ExamDetail joins an exam record with its owning user for display.
type ExamDetail struct {
	ID             int64   `db:"id"`
	UserID         int64   `db:"user_id"`
	Subject        string  `db:"subject"`
	Score          float64 `db:"score"`
	TotalQuestions int     `db:"total_questions"`
	CorrectCount   int     `db:"correct_count"`
	TimeSpent      int     `db:"time_spent"`
	ExamDate       string  `db:"exam_date"`
	Name           string  `db:"name"`
	EmployeeID     string  `db:"employee_id"`
}

// WrongAnswer is one missed question attached to an exam record.
type WrongAnswer struct {
	QuestionNumber int            `db:"question_number"`
	QuestionText   string         `db:"question_text"`
	UserAnswer     sql.NullString `db:"user_answer"`
	CorrectAnswer  sql.NullString `db:"correct_answer"`
	CreatedAt      string         `db:"created_at"`
}

// WrongQuestion is a row of the per-user deduplicated wrong-question bank,
// unique on (user_id, subject, question_text).
type WrongQuestion struct {
	ID            int64          `db:"id"`
	Subject       string         `db:"subject"`
	QuestionText  string         `db:"question_text"`
	OptionsJSON   sql.NullString `db:"options_json"`
	CorrectAnswer sql.NullString `db:"correct_answer"`
	UserAnswer    sql.NullString `db:"user_answer"`
	Source        sql.NullString `db:"source"`
	CreatedAt     string         `db:"created_at"`
	UpdatedAt     string         `db:"updated_at"`
}

// Note is a free-form user note.
type Note struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	Content   string `db:"content"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

// SubjectProgress is a per-user, per-subject aggregate.
type SubjectProgress struct {
	Subject      string  `db:"subject"`
	ExamCount    int     `db:"exam_count"`
	AvgScore     float64 `db:"avg_score"`
	BestScore    float64 `db:"best_score"`
	LastExamDate string  `db:"last_exam_date"`
}

// SubjectAggregate is a whole-subject pass/fail aggregate.
type SubjectAggregate struct {
	TotalExams int             `db:"total_exams"`
	AvgScore   sql.NullFloat64 `db:"avg_score"`
	PassCount  int             `db:"pass_count"`
	FailCount  int             `db:"fail_count"`
}

// SubjectStat is a row of the precomputed subject_stats view.
type SubjectStat struct {
	Subject    string  `db:"subject"`
	TotalExams int     `db:"total_exams"`
	AvgScore   float64 `db:"avg_score"`
	BestScore  float64 `db:"best_score"`
	PassCount  int     `db:"pass_count"`
}
