package model

// Scope carries the caller identity for a use case invocation.
type Scope struct {
	UserID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
