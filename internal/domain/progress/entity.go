package progress

// Progress is the per-user learning aggregate, created empty alongside the
// user record.
type Progress struct {
	UserID           string         `bson:"user_id" json:"user_id"`
	CompletedLessons []string       `bson:"completed_lessons" json:"completed_lessons"`
	QuizScores       map[string]int `bson:"quiz_scores" json:"quiz_scores"`
	TotalTastings    int            `bson:"total_tastings" json:"total_tastings"`
	CurrentStreak    int            `bson:"current_streak" json:"current_streak"`
	Badges           []string       `bson:"badges" json:"badges"`
	LastActivity     string         `bson:"last_activity,omitempty" json:"-"`
}

func Empty(userID, now string) Progress {
	return Progress{
		UserID:           userID,
		CompletedLessons: []string{},
		QuizScores:       map[string]int{},
		Badges:           []string{},
		LastActivity:     now,
	}
}
