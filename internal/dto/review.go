package dto

import "encoding/json"

// UpsertWrongQuestionRequest is the body of POST /api/wrong-questions/upsert.
// Options stays raw JSON; anything that is not an array is stored as [].
type UpsertWrongQuestionRequest struct {
	UserID        int64           `json:"userId"`
	EmployeeID    string          `json:"employeeId"`
	Subject       string          `json:"subject"`
	QuestionText  string          `json:"questionText"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correctAnswer"`
	UserAnswer    string          `json:"userAnswer"`
	Source        string          `json:"source"`
}

// DeleteWrongQuestionRequest is the body of POST /api/wrong-questions/delete.
type DeleteWrongQuestionRequest struct {
	UserID     int64  `json:"userId"`
	EmployeeID string `json:"employeeId"`
	WrongID    int64  `json:"wrongId"`
}

// WrongQuestionItem is one row of the wrong-question bank with the stored
// option list parsed back out.
type WrongQuestionItem struct {
	ID            int64  `json:"id"`
	Subject       string `json:"subject"`
	QuestionText  string `json:"question_text"`
	Options       []any  `json:"options"`
	CorrectAnswer string `json:"correct_answer"`
	UserAnswer    string `json:"user_answer"`
	Source        string `json:"source"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// WrongQuestionListResponse is the body of GET /api/wrong-questions.
type WrongQuestionListResponse struct {
	Success bool                `json:"success"`
	Items   []WrongQuestionItem `json:"items"`
}

// UpsertNoteRequest is the body of POST /api/notes/upsert. A zero NoteID
// means insert, otherwise an ownership-scoped update.
type UpsertNoteRequest struct {
	UserID     int64  `json:"userId"`
	EmployeeID string `json:"employeeId"`
	NoteID     int64  `json:"noteId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// UpsertNoteResponse reports the note id, generated on insert.
type UpsertNoteResponse struct {
	Success bool  `json:"success"`
	NoteID  int64 `json:"noteId"`
}

// DeleteNoteRequest is the body of POST /api/notes/delete.
type DeleteNoteRequest struct {
	UserID     int64  `json:"userId"`
	EmployeeID string `json:"employeeId"`
	NoteID     int64  `json:"noteId"`
}

// NoteItem is one row of GET /api/notes.
type NoteItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NoteListResponse is the body of GET /api/notes.
type NoteListResponse struct {
	Success bool       `json:"success"`
	Items   []NoteItem `json:"items"`
}
