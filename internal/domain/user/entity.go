package user

const (
	LanguagePT = "pt"
	LanguageEN = "en"
)

// User is the root identity record. PasswordHash is empty for OAuth-only
// accounts and is never serialized.
type User struct {
	UserID            string  `bson:"user_id" json:"user_id"`
	Email             string  `bson:"email" json:"email"`
	Name              string  `bson:"name" json:"name"`
	PasswordHash      string  `bson:"password_hash,omitempty" json:"-"`
	Picture           *string `bson:"picture" json:"picture"`
	PreferredLanguage string  `bson:"preferred_language" json:"preferred_language"`
	CreatedAt         string  `bson:"created_at" json:"created_at"`
}

func ValidLanguage(lang string) bool {
	return lang == LanguagePT || lang == LanguageEN
}
