package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gorm.io/gorm"

	"github.com/lingoapp/lingo/internal/content"
	"github.com/lingoapp/lingo/internal/progress"
	"github.com/lingoapp/lingo/internal/quiz"
	"github.com/lingoapp/lingo/internal/stats"
)

// PersistedState is the full durable shape that survives restarts and is
// reconciled with the backend. The quiz session is deliberately absent.
type PersistedState struct {
	DailyStats     []stats.DailyStat
	TopicProgress  []progress.TopicProgress
	WrongQuestions []quiz.WrongQuestion
}

// SaveState writes the entire state in one transaction, replacing what was
// there. Replace-not-merge matches the sync model: whoever saves owns the
// whole slice.
func (s *Store) SaveState(state PersistedState) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&DailyStatRow{}, &TopicProgressRow{}, &WrongQuestionRow{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear rows: %w", err)
			}
		}

		for _, d := range state.DailyStats {
			row := DailyStatRow{
				Date:              d.Date,
				MinutesStudied:    d.MinutesStudied,
				QuestionsAnswered: d.QuestionsAnswered,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("save daily stat %s: %w", d.Date, err)
			}
		}

		for _, p := range state.TopicProgress {
			row := TopicProgressRow{TopicID: p.TopicID, Completed: p.Completed, Score: p.Score}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("save topic progress %s: %w", p.TopicID, err)
			}
		}

		for i, w := range state.WrongQuestions {
			payload, err := json.Marshal(w.Question)
			if err != nil {
				return fmt.Errorf("encode wrong question %s: %w", w.Question.ID, err)
			}
			row := WrongQuestionRow{
				QuestionID: w.Question.ID,
				CategoryID: w.CategoryID,
				Position:   i,
				Payload:    string(payload),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("save wrong question %s: %w", w.Question.ID, err)
			}
		}

		return nil
	})
}

// LoadState reads the full durable state for launch rehydration.
func (s *Store) LoadState() (PersistedState, error) {
	var state PersistedState

	var dailyRows []DailyStatRow
	if err := s.db.Find(&dailyRows).Error; err != nil {
		return state, fmt.Errorf("load daily stats: %w", err)
	}
	for _, r := range dailyRows {
		state.DailyStats = append(state.DailyStats, stats.DailyStat{
			Date:              r.Date,
			MinutesStudied:    r.MinutesStudied,
			QuestionsAnswered: r.QuestionsAnswered,
		})
	}

	var progressRows []TopicProgressRow
	if err := s.db.Find(&progressRows).Error; err != nil {
		return state, fmt.Errorf("load topic progress: %w", err)
	}
	for _, r := range progressRows {
		state.TopicProgress = append(state.TopicProgress, progress.TopicProgress{
			TopicID:   r.TopicID,
			Completed: r.Completed,
			Score:     r.Score,
		})
	}

	var wrongRows []WrongQuestionRow
	if err := s.db.Find(&wrongRows).Error; err != nil {
		return state, fmt.Errorf("load wrong questions: %w", err)
	}
	sort.Slice(wrongRows, func(i, j int) bool { return wrongRows[i].Position < wrongRows[j].Position })
	for _, r := range wrongRows {
		var q content.Question
		if err := json.Unmarshal([]byte(r.Payload), &q); err != nil {
			// A corrupt row is dropped rather than blocking launch.
			fmt.Fprintf(os.Stderr, "warning: skipping wrong-question row %s: %v\n", r.QuestionID, err)
			continue
		}
		state.WrongQuestions = append(state.WrongQuestions, quiz.WrongQuestion{
			Question:   q,
			CategoryID: r.CategoryID,
		})
	}

	return state, nil
}

// Reset deletes all persisted state.
func (s *Store) Reset() error {
	return s.SaveState(PersistedState{})
}
