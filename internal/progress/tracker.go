package progress

// TopicProgress records a learner's completion of one topic.
// Created on first completion and never deleted, only updated.
type TopicProgress struct {
	TopicID   string
	Completed bool
	Score     int
}

// Tracker holds per-topic completion records. It owns no reference data;
// the category/level rollups in selectors.go take the topic list as an
// explicit argument.
type Tracker struct {
	byTopic map[string]*TopicProgress
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{byTopic: make(map[string]*TopicProgress)}
}

// RecordCompletion creates or updates the topic's record. Completion is
// monotone through this interface: once true it never reverts.
func (t *Tracker) RecordCompletion(topicID string, score int) {
	if topicID == "" {
		return
	}
	tp := t.byTopic[topicID]
	if tp == nil {
		tp = &TopicProgress{TopicID: topicID}
		t.byTopic[topicID] = tp
	}
	tp.Completed = true
	tp.Score = score
}

// IsCompleted reports whether the topic has been completed.
func (t *Tracker) IsCompleted(topicID string) bool {
	tp := t.byTopic[topicID]
	return tp != nil && tp.Completed
}

// Get returns the record for a topic, or nil if none exists.
func (t *Tracker) Get(topicID string) *TopicProgress {
	return t.byTopic[topicID]
}

// Snapshot exports all records for persistence and sync.
func (t *Tracker) Snapshot() []TopicProgress {
	out := make([]TopicProgress, 0, len(t.byTopic))
	for _, tp := range t.byTopic {
		out = append(out, *tp)
	}
	return out
}

// CompletedTopicIDs returns the IDs of completed topics, for the sync payload.
func (t *Tracker) CompletedTopicIDs() []string {
	var out []string
	for id, tp := range t.byTopic {
		if tp.Completed {
			out = append(out, id)
		}
	}
	return out
}

// Load replaces the tracker's records. Used at launch rehydration and by
// the login pull, where the server's completed-topics set wins outright.
func (t *Tracker) Load(records []TopicProgress) {
	t.byTopic = make(map[string]*TopicProgress, len(records))
	for i := range records {
		tp := records[i]
		t.byTopic[tp.TopicID] = &tp
	}
}

// LoadCompletedIDs replaces the tracker's records from a bare ID list,
// the shape the backend statistics payload uses.
func (t *Tracker) LoadCompletedIDs(ids []string) {
	t.byTopic = make(map[string]*TopicProgress, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		t.byTopic[id] = &TopicProgress{TopicID: id, Completed: true}
	}
}
