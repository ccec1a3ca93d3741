package config

import "os"

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment. CI=true wins over ENV,
// and anything unrecognised falls back to development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch env := Environment(os.Getenv("ENV")); env {
	case Production, Test, Development:
		return env
	}
	return Development
}

// IsDevelopment returns true if the current environment is development
func IsDevelopment() bool { return GetEnvironment() == Development }

// IsProduction returns true if the current environment is production
func IsProduction() bool { return GetEnvironment() == Production }

// GinMode maps the environment onto gin's run modes
func (e Environment) GinMode() string {
	switch e {
	case Production:
		return "release"
	case Test, CI:
		return "test"
	}
	return "debug"
}
