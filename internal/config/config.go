package config

type Config interface {
	EnvConfig
	SessionConfig
}

type EnvConfig interface {
	GetAppName() string
	GetBaseURL() string
	GetHTTPTimeout() string
	GetEnv() string
}

type SessionConfig interface {
	GetSessionFile() string
	GetSessionPassphrase() string
}

type mainConfig struct {
	EnvVars
	SessionVars
}

func New() Config {
	return mainConfig{}
}
