package store

// DailyStatRow is one calendar day's study record. Date is the local-day
// key in 2006-01-02 form, so one row per date is enforced by the schema.
type DailyStatRow struct {
	Date              string `gorm:"primaryKey;size:10"`
	MinutesStudied    int    `gorm:"not null"`
	QuestionsAnswered int    `gorm:"not null"`
}

// TopicProgressRow records completion of one topic.
type TopicProgressRow struct {
	TopicID   string `gorm:"primaryKey;size:64"`
	Completed bool   `gorm:"not null"`
	Score     int    `gorm:"not null"`
}

// WrongQuestionRow stores a wrong-answer capture. The question snapshot is
// kept as JSON so the row survives schema drift in the reference data.
type WrongQuestionRow struct {
	QuestionID string `gorm:"primaryKey;size:64"`
	CategoryID string `gorm:"index;size:64"`
	Position   int    `gorm:"not null"` // insertion order within the set
	Payload    string `gorm:"not null"` // JSON-encoded content.Question
}
