package dto

// UserSubjectStat is one per-subject aggregate for a single user.
type UserSubjectStat struct {
	Subject      string  `json:"subject"`
	ExamCount    int     `json:"exam_count"`
	AvgScore     float64 `json:"avg_score"`
	BestScore    float64 `json:"best_score"`
	LastExamDate string  `json:"last_exam_date"`
}

// SubjectStatsPayload aggregates one subject across all users.
type SubjectStatsPayload struct {
	TotalExams int     `json:"total_exams"`
	AvgScore   float64 `json:"avg_score"`
	PassCount  int     `json:"pass_count"`
	FailCount  int     `json:"fail_count"`
}

// SubjectBreakdownItem is one row of the precomputed per-subject view.
type SubjectBreakdownItem struct {
	Subject    string  `json:"subject"`
	TotalExams int     `json:"total_exams"`
	AvgScore   float64 `json:"avg_score"`
	BestScore  float64 `json:"best_score"`
	PassCount  int     `json:"pass_count"`
}

// GlobalStatsPayload is the system-wide aggregate.
type GlobalStatsPayload struct {
	TotalUsers int64                  `json:"totalUsers"`
	TotalExams int64                  `json:"totalExams"`
	PassRate   float64                `json:"passRate"`
	BySubject  []SubjectBreakdownItem `json:"bySubject"`
}

// StatsResponse wraps whichever stats mode was selected.
type StatsResponse struct {
	Success bool `json:"success"`
	Stats   any  `json:"stats"`
}
