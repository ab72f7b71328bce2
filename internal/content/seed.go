package content

// SeedCatalog returns the built-in beginner catalog. It keeps the app
// usable offline before the first successful content fetch; a fetch
// replaces it wholesale.
func SeedCatalog() *Catalog {
	c := NewCatalog()

	c.Categories = []Category{
		{ID: "grammar", LevelID: LevelBeginner, Description: "Grammar basics"},
		{ID: "vocabulary", LevelID: LevelBeginner, Description: "Everyday words"},
		{ID: "reading", LevelID: LevelBeginner, Description: "Short passages"},
	}

	c.Topics = []Topic{
		{ID: "g1", CategoryID: "grammar", LevelID: LevelBeginner, Name: "To be", Order: 1},
		{ID: "g2", CategoryID: "grammar", LevelID: LevelBeginner, Name: "Present simple", Order: 2},
		{ID: "g3", CategoryID: "grammar", LevelID: LevelBeginner, Name: "Articles", Order: 3},
		{ID: "v1", CategoryID: "vocabulary", LevelID: LevelBeginner, Name: "Colors", Order: 1},
		{ID: "v2", CategoryID: "vocabulary", LevelID: LevelBeginner, Name: "Numbers", Order: 2},
		{ID: "r1", CategoryID: "reading", LevelID: LevelBeginner, Name: "At the cafe", Order: 1},
	}

	c.Questions = map[string][]Question{
		"g1": {
			{ID: "g1-1", TopicID: "g1", CategoryID: "grammar", Text: "She ___ a teacher.", Options: []string{"is", "are", "am", "be"}, CorrectAnswerID: "0"},
			{ID: "g1-2", TopicID: "g1", CategoryID: "grammar", Text: "They ___ from Spain.", Options: []string{"is", "are", "am", "be"}, CorrectAnswerID: "1"},
			{ID: "g1-3", TopicID: "g1", CategoryID: "grammar", Text: "I ___ hungry.", Options: []string{"is", "are", "am", "be"}, CorrectAnswerID: "2"},
			{ID: "g1-4", TopicID: "g1", CategoryID: "grammar", Text: "The cats ___ on the sofa.", Options: []string{"is", "are", "am", "be"}, CorrectAnswerID: "1"},
		},
		"g2": {
			{ID: "g2-1", TopicID: "g2", CategoryID: "grammar", Text: "He ___ coffee every morning.", Options: []string{"drink", "drinks", "drinking", "drank"}, CorrectAnswerID: "1"},
			{ID: "g2-2", TopicID: "g2", CategoryID: "grammar", Text: "We ___ to work by bus.", Options: []string{"goes", "going", "go", "gone"}, CorrectAnswerID: "2"},
			{ID: "g2-3", TopicID: "g2", CategoryID: "grammar", Text: "She ___ English on Mondays.", Options: []string{"study", "studies", "studying", "studied"}, CorrectAnswerID: "1"},
		},
		"g3": {
			{ID: "g3-1", TopicID: "g3", CategoryID: "grammar", Text: "I saw ___ elephant at the zoo.", Options: []string{"a", "an", "the", "no article"}, CorrectAnswerID: "1"},
			{ID: "g3-2", TopicID: "g3", CategoryID: "grammar", Text: "___ sun rises in the east.", Options: []string{"A", "An", "The", "No article"}, CorrectAnswerID: "2"},
			{ID: "g3-3", TopicID: "g3", CategoryID: "grammar", Text: "She is ___ doctor.", Options: []string{"a", "an", "the", "no article"}, CorrectAnswerID: "0"},
		},
		"v1": {
			{ID: "v1-1", TopicID: "v1", CategoryID: "vocabulary", Text: "What color is the sky on a clear day?", Options: []string{"red", "blue", "green", "black"}, CorrectAnswerID: "1"},
			{ID: "v1-2", TopicID: "v1", CategoryID: "vocabulary", Text: "Grass is usually ___.", Options: []string{"green", "purple", "orange", "white"}, CorrectAnswerID: "0"},
			{ID: "v1-3", TopicID: "v1", CategoryID: "vocabulary", Text: "Snow is ___.", Options: []string{"yellow", "brown", "white", "pink"}, CorrectAnswerID: "2"},
		},
		"v2": {
			{ID: "v2-1", TopicID: "v2", CategoryID: "vocabulary", Text: "Seven plus three is ___.", Options: []string{"nine", "ten", "eleven", "twelve"}, CorrectAnswerID: "1"},
			{ID: "v2-2", TopicID: "v2", CategoryID: "vocabulary", Text: "A week has ___ days.", Options: []string{"five", "six", "seven", "eight"}, CorrectAnswerID: "2"},
			{ID: "v2-3", TopicID: "v2", CategoryID: "vocabulary", Text: "A dozen is ___.", Options: []string{"ten", "eleven", "twelve", "twenty"}, CorrectAnswerID: "2"},
		},
		"r1": {
			{ID: "r1-1", TopicID: "r1", CategoryID: "reading", Text: "What does Anna order?", Options: []string{"Tea", "Coffee", "Juice", "Water"}, CorrectAnswerID: "1", ReadingTextID: "rt1"},
			{ID: "r1-2", TopicID: "r1", CategoryID: "reading", Text: "Who does Anna meet?", Options: []string{"Her brother", "Her teacher", "Her friend", "Nobody"}, CorrectAnswerID: "2", ReadingTextID: "rt1"},
			{ID: "r1-3", TopicID: "r1", CategoryID: "reading", Text: "When does Anna go to the cafe?", Options: []string{"In the morning", "At noon", "In the evening", "At night"}, CorrectAnswerID: "0", ReadingTextID: "rt1"},
		},
	}

	c.Readings = map[string][]ReadingText{
		"r1": {
			{
				ID:      "rt1",
				TopicID: "r1",
				Title:   "At the cafe",
				Body: "Anna goes to a small cafe every morning. She orders a coffee " +
					"and sits by the window. Today she meets her friend Maria there. " +
					"They talk about their weekend plans.",
			},
		},
	}

	return c
}
