// Package progress keeps per-student learning statistics and derives reports
// from them. Storage is process-local and in-memory.
package progress

import "github.com/rgkonda/englishtutor/internal/tutor"

// Snapshot is the full progress view for one student.
type Snapshot struct {
	StudentID                string        `json:"student_id"`
	TotalConversations       int           `json:"total_conversations"`
	TotalSentences           int           `json:"total_sentences"`
	CorrectSentences         int           `json:"correct_sentences"`
	AccuracyPercentage       float64       `json:"accuracy_percentage"`
	RecentAccuracyPercentage float64       `json:"recent_accuracy_percentage"`
	CurrentLevel             string        `json:"current_level"`
	StreakDays               int           `json:"streak_days"`
	Strengths                []string      `json:"strengths"`
	AreasForImprovement      []string      `json:"areas_for_improvement"`
	LastActivity             string        `json:"last_activity,omitempty"`
	LearningInsights         []string      `json:"learning_insights"`
	WeeklyGoalProgress       WeeklyGoal    `json:"weekly_goal_progress"`
	Achievements             []Achievement `json:"achievements"`
}

// WeeklyGoal tracks sentence volume against the weekly target.
type WeeklyGoal struct {
	GoalSentences      int     `json:"goal_sentences"`
	CompletedSentences int     `json:"completed_sentences"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsGoalAchieved     bool    `json:"is_goal_achieved"`
}

// Achievement is an earned badge.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MistakeAnalysis summarizes one repeated mistake type.
type MistakeAnalysis struct {
	MistakeType       string   `json:"mistake_type"`
	Count             int      `json:"count"`
	Description       string   `json:"description"`
	RecentExamples    []string `json:"recent_examples"`
	SuggestedPractice string   `json:"suggested_practice"`
	LastOccurrence    string   `json:"last_occurrence"`
	ImprovementTrend  string   `json:"improvement_trend"`
}

// DailySummary reports one day of practice.
type DailySummary struct {
	Date               string   `json:"date"`
	Activity           bool     `json:"activity"`
	Message            string   `json:"message,omitempty"`
	SentencesPracticed int      `json:"sentences_practiced"`
	CorrectSentences   int      `json:"correct_sentences"`
	Accuracy           float64  `json:"accuracy"`
	MistakesMade       int      `json:"mistakes_made"`
	TopicsCovered      []string `json:"topics_covered"`
	SessionTimeMinutes int      `json:"session_time_minutes"`
	AchievementMessage string   `json:"achievement_message,omitempty"`
}

// WeeklyReport aggregates the trailing week of practice.
type WeeklyReport struct {
	WeekPeriod         string   `json:"week_period"`
	ActiveDays         int      `json:"active_days"`
	TotalSentences     int      `json:"total_sentences"`
	AccuracyPercentage float64  `json:"accuracy_percentage"`
	ImprovementTrend   string   `json:"improvement_trend"`
	TopicsCovered      []string `json:"topics_covered"`
	Achievements       []string `json:"achievements"`
	Recommendations    []string `json:"recommendations"`
}

// Store records conversation outcomes and serves progress views.
type Store interface {
	RecordTurn(studentID, message string, corrections []tutor.Correction, isCorrect bool)
	Progress(studentID string) Snapshot
	CommonMistakes(studentID string) []MistakeAnalysis
	DailySummary(studentID, date string) DailySummary
	WeeklyReport(studentID string) WeeklyReport
}
