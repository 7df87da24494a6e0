// Package study holds the lesson/quiz reference entities, seeded alongside the
// wine catalog.
package study

const (
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

type Track struct {
	TrackID       string  `bson:"track_id" json:"track_id"`
	Level         string  `bson:"level" json:"level"`
	TitlePT       string  `bson:"title_pt" json:"title_pt"`
	TitleEN       string  `bson:"title_en" json:"title_en"`
	DescriptionPT string  `bson:"description_pt" json:"description_pt"`
	DescriptionEN string  `bson:"description_en" json:"description_en"`
	LessonsCount  int     `bson:"lessons_count" json:"lessons_count"`
	ImageURL      *string `bson:"image_url" json:"image_url"`
}

type Lesson struct {
	LessonID        string `bson:"lesson_id" json:"lesson_id"`
	TrackID         string `bson:"track_id" json:"track_id"`
	Order           int    `bson:"order" json:"order"`
	TitlePT         string `bson:"title_pt" json:"title_pt"`
	TitleEN         string `bson:"title_en" json:"title_en"`
	ContentPT       string `bson:"content_pt" json:"content_pt"`
	ContentEN       string `bson:"content_en" json:"content_en"`
	DurationMinutes int    `bson:"duration_minutes" json:"duration_minutes"`
}

type QuizQuestion struct {
	QuestionID    string   `bson:"question_id" json:"question_id"`
	LessonID      *string  `bson:"lesson_id" json:"lesson_id"`
	TrackID       string   `bson:"track_id" json:"track_id"`
	QuestionType  string   `bson:"question_type" json:"question_type"`
	QuestionPT    string   `bson:"question_pt" json:"question_pt"`
	QuestionEN    string   `bson:"question_en" json:"question_en"`
	OptionsPT     []string `bson:"options_pt" json:"options_pt"`
	OptionsEN     []string `bson:"options_en" json:"options_en"`
	CorrectAnswer int      `bson:"correct_answer" json:"correct_answer"`
	ExplanationPT string   `bson:"explanation_pt" json:"explanation_pt"`
	ExplanationEN string   `bson:"explanation_en" json:"explanation_en"`
}
