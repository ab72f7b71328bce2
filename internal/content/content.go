package content

// Level is a proficiency tier. It determines which categories and topics
// are visible to a learner.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelElementary   Level = "elementary"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns the levels in ascending order of difficulty.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelElementary, LevelIntermediate, LevelAdvanced}
}

// DisplayName returns a human-readable name for a level.
func (l Level) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelElementary:
		return "Elementary"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return string(l)
	}
}

// Category is a subject grouping (grammar, vocabulary, ...) containing an
// ordered set of topics.
type Category struct {
	ID          string `json:"categoryId"`
	LevelID     Level  `json:"levelId"`
	Description string `json:"description"`
}

// Topic is the smallest unit of quiz content. Order defines the unlock
// sequence within its category.
type Topic struct {
	ID         string `json:"topicId"`
	CategoryID string `json:"categoryId"`
	LevelID    Level  `json:"levelId"`
	Name       string `json:"name"`
	Order      int    `json:"order"`
}

// ReadingText is a passage shown before its associated questions.
type ReadingText struct {
	ID      string `json:"readingTextId"`
	TopicID string `json:"topicId"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// Catalog holds the reference data fetched from the backend for one level.
// It is read-only from the core's point of view; refetching replaces it
// wholesale. Lookups against data that has not arrived yet return zero
// values, never errors.
type Catalog struct {
	Categories []Category
	Topics     []Topic
	Questions  map[string][]Question    // keyed by topic ID
	Readings   map[string][]ReadingText // keyed by topic ID
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Questions: make(map[string][]Question),
		Readings:  make(map[string][]ReadingText),
	}
}

// TopicsForCategory returns the topics belonging to the category.
// The result is not sorted; callers that care about unlock order sort by Order.
func (c *Catalog) TopicsForCategory(categoryID string) []Topic {
	var out []Topic
	for _, t := range c.Topics {
		if t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	return out
}

// TopicsForLevel returns every topic belonging to the level, across categories.
func (c *Catalog) TopicsForLevel(level Level) []Topic {
	var out []Topic
	for _, t := range c.Topics {
		if t.LevelID == level {
			out = append(out, t)
		}
	}
	return out
}

// QuestionsForTopic returns the questions served for a topic, or nil if the
// topic's questions have not been fetched.
func (c *Catalog) QuestionsForTopic(topicID string) []Question {
	return c.Questions[topicID]
}

// ReadingForQuestion resolves the reading text a question links to, or nil.
func (c *Catalog) ReadingForQuestion(q *Question) *ReadingText {
	if q == nil || q.ReadingTextID == "" {
		return nil
	}
	for i := range c.Readings[q.TopicID] {
		if c.Readings[q.TopicID][i].ID == q.ReadingTextID {
			return &c.Readings[q.TopicID][i]
		}
	}
	return nil
}
