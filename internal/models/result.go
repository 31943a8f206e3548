package models

import "time"

// AnalysisResult is one row of an analyze response. Failed rows carry only
// the filename, the Processing Error verdict and the failure text.
type AnalysisResult struct {
	EvaluationID   uint     `json:"evaluation_id,omitempty"`
	JDTitle        string   `json:"jd_title,omitempty"`
	ResumeFilename string   `json:"resume_filename"`
	Score          float64  `json:"score"`
	HardScore      float64  `json:"hard_score"`
	SemanticScore  float64  `json:"semantic_score"`
	SemanticStatus string   `json:"semantic_status,omitempty"`
	Verdict        Verdict  `json:"verdict"`
	MissingSkills  []string `json:"missing_skills"`
	Feedback       string   `json:"feedback"`
}

type AnalyzeResponse struct {
	JDTitle string           `json:"jd_title"`
	Results []AnalysisResult `json:"results"`
}

// HistoryEntry is a dashboard row; Score is rounded for display only.
type HistoryEntry struct {
	ID             uint      `json:"id"`
	JDTitle        string    `json:"jd_title"`
	ResumeFilename string    `json:"resume_filename"`
	Score          float64   `json:"score"`
	Verdict        Verdict   `json:"verdict"`
	MissingSkills  string    `json:"missing_skills"`
	Feedback       string    `json:"feedback"`
	Timestamp      time.Time `json:"timestamp"`
}

type HistoryResponse struct {
	Count       int            `json:"count"`
	Evaluations []HistoryEntry `json:"evaluations"`
}

type ReportRequest struct {
	JDTitle        string   `json:"jd_title"`
	ResumeFilename string   `json:"resume_filename"`
	Score          float64  `json:"score"`
	Verdict        Verdict  `json:"verdict"`
	MissingSkills  []string `json:"missing_skills"`
	Feedback       string   `json:"feedback"`
}
