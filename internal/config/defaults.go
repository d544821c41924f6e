package config

import "time"

// defaultConfig returns the built-in fallback values. It is merged last, so
// any field set by env, flags, or the JSON file takes precedence.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   "jobtrack",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "jobtrack.db",
			},
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Search: Search{
			BaseURL:        "https://data.usajobs.gov/api/Search",
			Host:           "data.usajobs.gov",
			Timeout:        10 * time.Second,
			ResultsPerPage: 25,
		},
	}
}
