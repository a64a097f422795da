package progress

import (
	"strings"
	"sync"
	"time"

	"github.com/rgkonda/englishtutor/internal/tutor"
)

const dateLayout = "2006-01-02"

type conversationRecord struct {
	at         time.Time
	isCorrect  bool
	wordCount  int
	complexity float64
}

type mistakeRecord struct {
	at         time.Time
	correction tutor.Correction
	context    string
}

type dayStats struct {
	sentences int
	correct   int
	mistakes  int
}

type studentRecord struct {
	conversations []conversationRecord
	mistakes      []mistakeRecord
	daily         map[string]*dayStats

	totalConversations int
	totalSentences     int
	correctSentences   int
	startedAt          time.Time
	lastActivity       time.Time
	level              string
}

// MemoryStore is the in-memory Store implementation. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	now      func() time.Time
	students map[string]*studentRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:      time.Now,
		students: make(map[string]*studentRecord),
	}
}

func (s *MemoryStore) student(studentID string) *studentRecord {
	record, ok := s.students[studentID]
	if !ok {
		record = &studentRecord{
			daily: make(map[string]*dayStats),
			level: "beginner",
		}
		s.students[studentID] = record
	}
	return record
}

func (s *MemoryStore) day(record *studentRecord, key string) *dayStats {
	stats, ok := record.daily[key]
	if !ok {
		stats = &dayStats{}
		record.daily[key] = stats
	}
	return stats
}

// RecordTurn folds one conversation turn into the student's statistics.
func (s *MemoryStore) RecordTurn(studentID, message string, corrections []tutor.Correction, isCorrect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record := s.student(studentID)

	if record.startedAt.IsZero() {
		record.startedAt = now
	}
	record.lastActivity = now
	record.totalConversations++
	record.totalSentences++
	if isCorrect {
		record.correctSentences++
	}

	today := s.day(record, now.Format(dateLayout))
	today.sentences++
	if isCorrect {
		today.correct++
	} else {
		today.mistakes += len(corrections)
		for _, correction := range corrections {
			record.mistakes = append(record.mistakes, mistakeRecord{
				at:         now,
				correction: correction,
				context:    message,
			})
		}
	}

	record.conversations = append(record.conversations, conversationRecord{
		at:         now,
		isCorrect:  isCorrect,
		wordCount:  len(strings.Fields(message)),
		complexity: estimateComplexity(message),
	})

	record.level = assessLevel(record)
}

// estimateComplexity scores a message between 0 and 1 from its length and
// average word length.
func estimateComplexity(message string) float64 {
	words := strings.Fields(message)
	totalLen := 0
	for _, word := range words {
		totalLen += len(word)
	}
	avgWordLength := float64(totalLen) / float64(max(len(words), 1))

	complexity := float64(len(words))*0.1 + avgWordLength*0.05
	return min(1.0, complexity)
}

// assessLevel re-derives the proficiency level from the last 20 conversations
// once the student has at least 10 sentences on record.
func assessLevel(record *studentRecord) string {
	if record.totalSentences < 10 {
		return "beginner"
	}

	recent := record.conversations
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}
	if len(recent) == 0 {
		return record.level
	}

	correct := 0
	totalComplexity := 0.0
	totalWords := 0
	for _, conv := range recent {
		if conv.isCorrect {
			correct++
		}
		totalComplexity += conv.complexity
		totalWords += conv.wordCount
	}

	accuracy := float64(correct) / float64(len(recent))
	avgComplexity := totalComplexity / float64(len(recent))
	avgWords := float64(totalWords) / float64(len(recent))

	switch {
	case accuracy >= 0.8 && avgComplexity >= 0.6 && avgWords >= 15:
		return "advanced"
	case accuracy >= 0.6 && avgComplexity >= 0.4 && avgWords >= 8:
		return "intermediate"
	default:
		return "beginner"
	}
}

// streakDays counts consecutive active days ending today. A day without
// activity yet today does not break the streak until it is over.
func (s *MemoryStore) streakDays(record *studentRecord) int {
	day := s.now()
	key := day.Format(dateLayout)
	if stats, ok := record.daily[key]; !ok || stats.sentences == 0 {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		stats, ok := record.daily[day.Format(dateLayout)]
		if !ok || stats.sentences == 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
