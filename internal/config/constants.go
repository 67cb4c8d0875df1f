package config

const (
	// DefaultDatabasePath is the default path for the content snapshot database
	DefaultDatabasePath = "./vyakarana.db"

	// DefaultCMSURL is where a local Strapi development server listens
	DefaultCMSURL = "http://localhost:1337"
)
