package config

const (
	ENV_KEY_APP_ENV = "APP_ENV"
	ENV_KEY_PORT    = "PORT"
)

type ContextKey uint

const (
	_ ContextKey = iota
	CTX_KEY_USER_ID
)
