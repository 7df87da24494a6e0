package tasting

// Note is a user-owned tasting record. The four structured sections are open
// attribute bags so new tasting fields don't require a schema change. Notes are
// immutable after creation; the only mutations are create and delete.
type Note struct {
	TastingID  string         `bson:"tasting_id" json:"tasting_id"`
	UserID     string         `bson:"user_id" json:"user_id"`
	WineName   string         `bson:"wine_name" json:"wine_name"`
	Vintage    *int           `bson:"vintage" json:"vintage"`
	GrapeIDs   []string       `bson:"grape_ids" json:"grape_ids"`
	RegionID   *string        `bson:"region_id" json:"region_id"`
	Appearance map[string]any `bson:"appearance" json:"appearance"`
	Nose       map[string]any `bson:"nose" json:"nose"`
	Palate     map[string]any `bson:"palate" json:"palate"`
	Conclusion map[string]any `bson:"conclusion" json:"conclusion"`
	Notes      *string        `bson:"notes" json:"notes"`
	CreatedAt  string         `bson:"created_at" json:"created_at"`
}
