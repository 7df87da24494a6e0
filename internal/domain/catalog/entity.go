// Package catalog holds the static bilingual wine-reference entities. They are
// written only by the seeding service and read-only from the API surface.
package catalog

const (
	WorldTypeOld = "old_world"
	WorldTypeNew = "new_world"

	GrapeTypeRed   = "red"
	GrapeTypeWhite = "white"
)

type Country struct {
	CountryID     string  `bson:"country_id" json:"country_id"`
	NamePT        string  `bson:"name_pt" json:"name_pt"`
	NameEN        string  `bson:"name_en" json:"name_en"`
	WorldType     string  `bson:"world_type" json:"world_type"`
	FlagEmoji     string  `bson:"flag_emoji" json:"flag_emoji"`
	DescriptionPT string  `bson:"description_pt" json:"description_pt"`
	DescriptionEN string  `bson:"description_en" json:"description_en"`
	ImageURL      *string `bson:"image_url" json:"image_url"`
}

// Terroir and climate are open attribute bags: the seeded datasets carry both
// the legacy single-language fields and the bilingual *_pt/*_en variants.
type Region struct {
	RegionID      string         `bson:"region_id" json:"region_id"`
	CountryID     string         `bson:"country_id" json:"country_id"`
	Name          string         `bson:"name" json:"name"`
	DescriptionPT string         `bson:"description_pt" json:"description_pt"`
	DescriptionEN string         `bson:"description_en" json:"description_en"`
	Terroir       map[string]any `bson:"terroir" json:"terroir"`
	Climate       map[string]any `bson:"climate" json:"climate"`
	Appellations  []string       `bson:"appellations" json:"appellations"`
	MainGrapes    []string       `bson:"main_grapes" json:"main_grapes"`
	WineStyles    []string       `bson:"wine_styles" json:"wine_styles"`
}

type Grape struct {
	GrapeID           string         `bson:"grape_id" json:"grape_id"`
	Name              string         `bson:"name" json:"name"`
	GrapeType         string         `bson:"grape_type" json:"grape_type"`
	OriginCountry     string         `bson:"origin_country" json:"origin_country"`
	DescriptionPT     string         `bson:"description_pt" json:"description_pt"`
	DescriptionEN     string         `bson:"description_en" json:"description_en"`
	AromaticNotes     []string       `bson:"aromatic_notes" json:"aromatic_notes"`
	FlavorNotes       []string       `bson:"flavor_notes" json:"flavor_notes"`
	Structure         map[string]any `bson:"structure" json:"structure"`
	AgingPotential    string         `bson:"aging_potential" json:"aging_potential"`
	BestRegions       []string       `bson:"best_regions" json:"best_regions"`
	ClimatePreference string         `bson:"climate_preference" json:"climate_preference"`
	ImageURL          *string        `bson:"image_url" json:"image_url"`
}

type AromaTag struct {
	TagID    string `bson:"tag_id" json:"tag_id"`
	NamePT   string `bson:"name_pt" json:"name_pt"`
	NameEN   string `bson:"name_en" json:"name_en"`
	Category string `bson:"category" json:"category"`
	Emoji    string `bson:"emoji" json:"emoji"`
}
