package common

// Keys in the durable local key-value store. Plain string values,
// no schema versioning.
const (
	AccessTokenKey = "access_token"
	LocaleKey      = "locale"
	ThemeKey       = "theme"
)
