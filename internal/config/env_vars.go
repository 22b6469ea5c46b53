package config

import (
	"os"
)

const (
	appNameVar    = "APP_NAME"
	baseURLVar    = "LEGALSUITE_API_URL"
	timeoutEnvVar = "LEGALSUITE_HTTP_TIMEOUT"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Legal Suite")
}

// GetBaseURL returns the base URL of the Legal Suite REST API. The
// default matches the backend's local development address.
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://127.0.0.1:8000/api/")
}

// GetHTTPTimeout returns the per-request timeout as a duration string.
func (EnvVars) GetHTTPTimeout() string {
	return GetEnv(timeoutEnvVar, "30s")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
