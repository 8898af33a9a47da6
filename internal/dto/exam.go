package dto

// WrongAnswerInput is one missed question submitted with an exam.
type WrongAnswerInput struct {
	QuestionNumber int    `json:"questionNumber"`
	QuestionText   string `json:"questionText"`
	UserAnswer     string `json:"userAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
}

// SaveExamRequest is the body of POST /api/save-exam. Score is a pointer so
// an absent score can be told apart from an explicit zero.
type SaveExamRequest struct {
	UserID         int64              `json:"userId"`
	EmployeeID     string             `json:"employeeId"`
	Subject        string             `json:"subject"`
	Score          *float64           `json:"score"`
	TotalQuestions int                `json:"totalQuestions"`
	CorrectCount   int                `json:"correctCount"`
	TimeSpent      int                `json:"timeSpent"`
	WrongAnswers   []WrongAnswerInput `json:"wrongAnswers"`
}

// SaveExamResponse reports the created record and the recomputed best score.
type SaveExamResponse struct {
	Success      bool    `json:"success"`
	ExamRecordID int64   `json:"examRecordId"`
	BestScore    float64 `json:"bestScore"`
	Message      string  `json:"message"`
}

// ExamRecordItem is one row of GET /api/user-exams.
type ExamRecordItem struct {
	ID             int64   `json:"id"`
	Subject        string  `json:"subject"`
	Score          float64 `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	CorrectCount   int     `json:"correct_count"`
	TimeSpent      int     `json:"time_spent"`
	ExamDate       string  `json:"exam_date"`
	BestScore      float64 `json:"best_score"`
}

// UserExamsResponse lists a user's recent exam records.
type UserExamsResponse struct {
	Success bool             `json:"success"`
	Records []ExamRecordItem `json:"records"`
}

// ExamWrongAnswer is one missed question in an exam detail.
type ExamWrongAnswer struct {
	QuestionNumber int    `json:"question_number"`
	QuestionText   string `json:"question_text"`
	UserAnswer     string `json:"user_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	CreatedAt      string `json:"created_at"`
}

// ExamDetail is the full exam record with owner display fields and the
// wrong-answer list.
type ExamDetail struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	Subject        string            `json:"subject"`
	Score          float64           `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	CorrectCount   int               `json:"correct_count"`
	TimeSpent      int               `json:"time_spent"`
	ExamDate       string            `json:"exam_date"`
	Name           string            `json:"name"`
	EmployeeID     string            `json:"employee_id"`
	WrongAnswers   []ExamWrongAnswer `json:"wrongAnswers"`
}

// ExamHistoryResponse is the body of GET /api/exam-history.
type ExamHistoryResponse struct {
	Success bool       `json:"success"`
	Exam    ExamDetail `json:"exam"`
}
