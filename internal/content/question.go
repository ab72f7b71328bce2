package content

import "strconv"

// QuestionKind tags the presentation variant of a question.
type QuestionKind int

const (
	KindPlain         QuestionKind = iota // text-only prompt
	KindImage                             // prompt with an illustration
	KindAudio                             // prompt with an audio clip
	KindReadingLinked                     // preceded by a reading passage
)

// Label returns the display label for a question kind.
func (k QuestionKind) Label() string {
	switch k {
	case KindPlain:
		return "Text"
	case KindImage:
		return "Image"
	case KindAudio:
		return "Audio"
	case KindReadingLinked:
		return "Reading"
	default:
		return "Unknown"
	}
}

// Question is a single multiple-choice question. It is immutable once
// fetched; CorrectAnswerID is the index into Options encoded as a string,
// matching the wire format.
type Question struct {
	ID              string   `json:"id"`
	TopicID         string   `json:"topicId"`
	CategoryID      string   `json:"categoryId"`
	Text            string   `json:"text"`
	Options         []string `json:"options"`
	CorrectAnswerID string   `json:"correctAnswerId"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	AudioURL        string   `json:"audioUrl,omitempty"`
	ReadingTextID   string   `json:"readingTextId,omitempty"`
}

// Kind derives the presentation variant from the optional fields.
// Reading linkage wins over media: a reading-linked question with an image
// still renders its passage first.
func (q *Question) Kind() QuestionKind {
	switch {
	case q.ReadingTextID != "":
		return KindReadingLinked
	case q.AudioURL != "":
		return KindAudio
	case q.ImageURL != "":
		return KindImage
	default:
		return KindPlain
	}
}

// CorrectIndex parses CorrectAnswerID into an option index.
// Returns -1 if the ID is not a valid index into Options.
func (q *Question) CorrectIndex() int {
	i, err := strconv.Atoi(q.CorrectAnswerID)
	if err != nil || i < 0 || i >= len(q.Options) {
		return -1
	}
	return i
}

// IsCorrect reports whether the given option index is the correct answer.
func (q *Question) IsCorrect(index int) bool {
	ci := q.CorrectIndex()
	return ci >= 0 && index == ci
}
