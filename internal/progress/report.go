package progress

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const weeklyGoalSentences = 50

// Progress assembles the full progress snapshot for a student. Students with
// no history get a welcome snapshot.
func (s *MemoryStore) Progress(studentID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.students[studentID]
	if !ok || record.totalSentences == 0 {
		return defaultSnapshot(studentID)
	}

	accuracy := percent(record.correctSentences, record.totalSentences)

	recent := record.conversations
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}
	recentCorrect := 0
	for _, conv := range recent {
		if conv.isCorrect {
			recentCorrect++
		}
	}
	recentAccuracy := percent(recentCorrect, len(recent))

	streak := s.streakDays(record)

	return Snapshot{
		StudentID:                studentID,
		TotalConversations:       record.totalConversations,
		TotalSentences:           record.totalSentences,
		CorrectSentences:         record.correctSentences,
		AccuracyPercentage:       accuracy,
		RecentAccuracyPercentage: recentAccuracy,
		CurrentLevel:             record.level,
		StreakDays:               streak,
		Strengths:                analyzeStrengths(record, streak),
		AreasForImprovement:      analyzeImprovements(record),
		LastActivity:             record.lastActivity.Format(time.RFC3339),
		LearningInsights:         learningInsights(record, streak),
		WeeklyGoalProgress:       s.weeklyGoal(record),
		Achievements:             achievements(record, streak, accuracy),
	}
}

func defaultSnapshot(studentID string) Snapshot {
	return Snapshot{
		StudentID:           studentID,
		CurrentLevel:        "beginner",
		Strengths:           []string{"Ready to learn!"},
		AreasForImprovement: []string{"Start with basic sentences"},
		LearningInsights:    []string{"Welcome to your English learning journey! 🚀"},
		WeeklyGoalProgress:  WeeklyGoal{GoalSentences: weeklyGoalSentences},
		Achievements:        []Achievement{},
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// skillOf buckets mistake types into the five coachable skills.
func skillOf(mistakeType string) string {
	switch strings.TrimSuffix(mistakeType, "_error") {
	case "tense":
		return "tense"
	case "preposition":
		return "preposition"
	case "vocabulary":
		return "vocabulary"
	case "pronunciation":
		return "pronunciation"
	default:
		return "grammar"
	}
}

var skillStrengths = map[string]string{
	"grammar":       "Good grasp of basic grammar rules",
	"tense":         "Proper use of verb tenses",
	"vocabulary":    "Strong vocabulary knowledge",
	"pronunciation": "Clear pronunciation",
	"preposition":   "Correct use of prepositions",
}

var skillImprovements = map[string]string{
	"grammar":       "Focus on basic grammar rules and sentence structure",
	"tense":         "Practice verb tenses - past, present, and future forms",
	"vocabulary":    "Expand vocabulary with daily word learning",
	"pronunciation": "Work on pronunciation and speaking clarity",
	"preposition":   "Learn proper preposition usage (in, on, at, etc.)",
}

var skillOrder = []string{"grammar", "tense", "vocabulary", "pronunciation", "preposition"}

func analyzeStrengths(record *studentRecord, streak int) []string {
	counts := map[string]int{}
	for _, mistake := range record.mistakes {
		counts[skillOf(mistake.correction.MistakeType)]++
	}

	var strengths []string
	for _, skill := range skillOrder {
		if counts[skill] <= 2 {
			strengths = append(strengths, skillStrengths[skill])
		}
	}
	if streak >= 3 {
		strengths = append(strengths, "Consistent practice habit")
	}
	if record.totalSentences >= 50 {
		strengths = append(strengths, "Active participation in learning")
	}

	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	return strengths
}

func analyzeImprovements(record *studentRecord) []string {
	recent := record.mistakes
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}

	counts := map[string]int{}
	for _, mistake := range recent {
		counts[skillOf(mistake.correction.MistakeType)]++
	}

	type skillCount struct {
		skill string
		count int
	}
	var ranked []skillCount
	for skill, count := range counts {
		ranked = append(ranked, skillCount{skill, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].skill < ranked[j].skill
	})

	var improvements []string
	for _, entry := range ranked {
		if len(improvements) == 3 {
			break
		}
		if entry.count >= 3 {
			improvements = append(improvements, skillImprovements[entry.skill])
		}
	}
	return improvements
}

func learningInsights(record *studentRecord, streak int) []string {
	var insights []string

	if record.totalSentences >= 100 {
		insights = append(insights, "🎉 You've practiced over 100 sentences! Great dedication!")
	}
	if streak >= 7 {
		insights = append(insights, fmt.Sprintf("🔥 Amazing! You have a %d-day practice streak!", streak))
	}

	recent := record.conversations
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	if len(recent) > 0 {
		correct := 0
		for _, conv := range recent {
			if conv.isCorrect {
				correct++
			}
		}
		accuracy := float64(correct) / float64(len(recent))
		if accuracy >= 0.8 {
			insights = append(insights, "📈 Your accuracy has improved significantly! Keep it up!")
		} else if accuracy < 0.5 {
			insights = append(insights, "💪 Don't worry about mistakes - they help you learn faster!")
		}
	}

	return insights
}

func achievements(record *studentRecord, streak int, accuracy float64) []Achievement {
	var earned []Achievement

	if record.totalSentences >= 10 {
		earned = append(earned, Achievement{Title: "First Steps", Description: "Completed 10 sentences", Icon: "👶"})
	}
	if record.totalSentences >= 50 {
		earned = append(earned, Achievement{Title: "Getting Started", Description: "Practiced 50 sentences", Icon: "🌱"})
	}
	if record.totalSentences >= 100 {
		earned = append(earned, Achievement{Title: "Dedicated Learner", Description: "Reached 100 sentences", Icon: "🎯"})
	}

	if streak >= 3 {
		earned = append(earned, Achievement{Title: "Consistent", Description: "3-day practice streak", Icon: "🔥"})
	}
	if streak >= 7 {
		earned = append(earned, Achievement{Title: "Committed", Description: "1-week streak", Icon: "⭐"})
	}
	if streak >= 30 {
		earned = append(earned, Achievement{Title: "Dedicated", Description: "1-month streak", Icon: "🏆"})
	}

	if record.totalSentences >= 20 {
		if accuracy >= 80 {
			earned = append(earned, Achievement{Title: "Accurate Speaker", Description: "80%+ accuracy", Icon: "🎯"})
		}
		if accuracy >= 90 {
			earned = append(earned, Achievement{Title: "Precision Master", Description: "90%+ accuracy", Icon: "💎"})
		}
	}

	return earned
}

// weeklyGoal counts sentences from Monday of the current week.
func (s *MemoryStore) weeklyGoal(record *studentRecord) WeeklyGoal {
	now := s.now()
	weekStart := now.AddDate(0, 0, -int((now.Weekday()+6)%7))

	completed := 0
	for i := 0; i < 7; i++ {
		key := weekStart.AddDate(0, 0, i).Format(dateLayout)
		if stats, ok := record.daily[key]; ok {
			completed += stats.sentences
		}
	}

	progress := min(100, percent(completed, weeklyGoalSentences))
	return WeeklyGoal{
		GoalSentences:      weeklyGoalSentences,
		CompletedSentences: completed,
		ProgressPercentage: progress,
		IsGoalAchieved:     completed >= weeklyGoalSentences,
	}
}

var mistakeDescriptions = map[string]string{
	"grammar":                "Basic grammar and sentence structure errors",
	"tense":                  "Incorrect use of past, present, or future tenses",
	"vocabulary":             "Wrong word choice or usage",
	"pronunciation":          "Pronunciation and speaking clarity issues",
	"preposition":            "Incorrect use of prepositions (in, on, at, etc.)",
	"article":                "Incorrect use of articles (a, an, the)",
	"subject_verb_agreement": "Subject and verb do not agree in number",
	"capitalization":         "Incorrect capitalization of words",
	"punctuation":            "Missing or incorrect punctuation marks",
}

var practiceSuggestions = map[string]string{
	"grammar":                "Practice basic sentence structures: Subject + Verb + Object",
	"tense":                  "Practice verb forms: I go (present), I went (past), I will go (future)",
	"vocabulary":             "Learn 5 new words daily and use them in sentences",
	"pronunciation":          "Practice speaking slowly and clearly, listen to native speakers",
	"preposition":            "Learn preposition rules: at (time), in (places), on (surfaces)",
	"article":                "Practice: a/an for singular countable nouns, the for specific items",
	"subject_verb_agreement": "Remember: I am, you are, he/she is, we/they are",
	"capitalization":         "Always start sentences with capital letters, capitalize \"I\"",
	"punctuation":            "End sentences with periods (.), questions with (?)",
}

// CommonMistakes lists mistake types the student repeated at least twice,
// most frequent first.
func (s *MemoryStore) CommonMistakes(studentID string) []MistakeAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.students[studentID]
	if !ok || len(record.mistakes) == 0 {
		return []MistakeAnalysis{}
	}

	grouped := map[string][]mistakeRecord{}
	for _, mistake := range record.mistakes {
		key := mistake.correction.MistakeType
		grouped[key] = append(grouped[key], mistake)
	}

	analyses := make([]MistakeAnalysis, 0, len(grouped))
	for mistakeType, group := range grouped {
		if len(group) < 2 {
			continue
		}

		recent := group
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		examples := make([]string, 0, len(recent))
		for _, mistake := range recent {
			examples = append(examples, mistake.correction.OriginalText)
		}

		key := strings.TrimSuffix(mistakeType, "_error")
		description, ok := mistakeDescriptions[key]
		if !ok {
			description = "Common English language error"
		}
		suggestion, ok := practiceSuggestions[key]
		if !ok {
			suggestion = "Keep practicing and focus on this area"
		}

		analyses = append(analyses, MistakeAnalysis{
			MistakeType:       mistakeType,
			Count:             len(group),
			Description:       description,
			RecentExamples:    examples,
			SuggestedPractice: suggestion,
			LastOccurrence:    group[len(group)-1].at.Format(time.RFC3339),
			ImprovementTrend:  improvementTrend(len(group)),
		})
	}

	sort.Slice(analyses, func(i, j int) bool {
		if analyses[i].Count != analyses[j].Count {
			return analyses[i].Count > analyses[j].Count
		}
		return analyses[i].MistakeType < analyses[j].MistakeType
	})

	return analyses
}

// improvementTrend compares the last five occurrences against the five before
// them, by position in the per-type history.
func improvementTrend(occurrences int) string {
	if occurrences < 4 {
		return "not_enough_data"
	}

	recent := min(5, occurrences)
	older := min(5, max(0, occurrences-5))

	switch {
	case recent < older:
		return "improving"
	case recent > older:
		return "needs_attention"
	default:
		return "stable"
	}
}

// DailySummary reports practice for the given ISO date, defaulting to today.
func (s *MemoryStore) DailySummary(studentID, date string) DailySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if date == "" {
		date = s.now().Format(dateLayout)
	}

	record, ok := s.students[studentID]
	if !ok {
		return DailySummary{Date: date, Message: "No practice session today"}
	}
	stats, ok := record.daily[date]
	if !ok || stats.sentences == 0 {
		return DailySummary{Date: date, Message: "No practice session today"}
	}

	accuracy := percent(stats.correct, stats.sentences)

	return DailySummary{
		Date:               date,
		Activity:           true,
		SentencesPracticed: stats.sentences,
		CorrectSentences:   stats.correct,
		Accuracy:           accuracy,
		MistakesMade:       stats.mistakes,
		TopicsCovered:      []string{},
		AchievementMessage: dailyAchievementMessage(stats, accuracy),
	}
}

func dailyAchievementMessage(stats *dayStats, accuracy float64) string {
	switch {
	case accuracy >= 90:
		return fmt.Sprintf("🌟 Excellent! %.0f%% accuracy today!", accuracy)
	case accuracy >= 70:
		return fmt.Sprintf("👍 Good work! %.0f%% accuracy today!", accuracy)
	default:
		return fmt.Sprintf("💪 Keep practicing! You completed %d sentences today!", stats.sentences)
	}
}

// WeeklyReport aggregates the trailing week, today included.
func (s *MemoryStore) WeeklyReport(studentID string) WeeklyReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := s.now()
	start := end.AddDate(0, 0, -7)

	report := WeeklyReport{
		WeekPeriod:       fmt.Sprintf("%s to %s", start.Format(dateLayout), end.Format(dateLayout)),
		ImprovementTrend: "stable",
		TopicsCovered:    []string{},
		Achievements:     []string{},
		Recommendations:  []string{},
	}

	record, ok := s.students[studentID]
	if !ok {
		report.Recommendations = weeklyRecommendations(0, 0, nil)
		return report
	}

	totalCorrect := 0
	totalMistakes := 0
	var dailyAccuracies []float64
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		stats, ok := record.daily[day.Format(dateLayout)]
		if !ok || stats.sentences == 0 {
			continue
		}
		report.ActiveDays++
		report.TotalSentences += stats.sentences
		totalCorrect += stats.correct
		totalMistakes += stats.mistakes
		dailyAccuracies = append(dailyAccuracies, percent(stats.correct, stats.sentences))
	}

	report.AccuracyPercentage = percent(totalCorrect, report.TotalSentences)

	if len(dailyAccuracies) >= 2 {
		first := dailyAccuracies[0]
		last := dailyAccuracies[len(dailyAccuracies)-1]
		if last > first+10 {
			report.ImprovementTrend = "improving"
		} else if last < first-10 {
			report.ImprovementTrend = "needs_attention"
		}
	}

	if report.ActiveDays >= 5 {
		report.Achievements = append(report.Achievements, "🏆 Practiced 5+ days this week!")
	}
	if report.TotalSentences >= 30 {
		report.Achievements = append(report.Achievements, "📈 Completed 30+ sentences this week!")
	}
	if report.TotalSentences > 0 && float64(totalCorrect)/float64(report.TotalSentences) >= 0.8 {
		report.Achievements = append(report.Achievements, "🎯 Achieved 80%+ accuracy this week!")
	}

	report.Recommendations = weeklyRecommendations(report.ActiveDays, report.TotalSentences, s.commonMistakesLocked(record))

	return report
}

func weeklyRecommendations(activeDays, totalSentences int, commonMistakes []MistakeAnalysis) []string {
	recommendations := []string{}
	if activeDays < 3 {
		recommendations = append(recommendations, "Try to practice at least 3 days next week")
	}
	if totalSentences < 20 {
		recommendations = append(recommendations, "Aim for 20+ sentences next week")
	}
	if len(commonMistakes) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Focus on %s practice", commonMistakes[0].MistakeType))
	}
	return recommendations
}

// commonMistakesLocked is CommonMistakes for callers already holding the lock.
func (s *MemoryStore) commonMistakesLocked(record *studentRecord) []MistakeAnalysis {
	counts := map[string]int{}
	for _, mistake := range record.mistakes {
		counts[mistake.correction.MistakeType]++
	}

	var top MistakeAnalysis
	for mistakeType, count := range counts {
		if count < 2 {
			continue
		}
		if count > top.Count || (count == top.Count && (top.MistakeType == "" || mistakeType < top.MistakeType)) {
			top = MistakeAnalysis{MistakeType: mistakeType, Count: count}
		}
	}

	if top.Count == 0 {
		return nil
	}
	return []MistakeAnalysis{top}
}
