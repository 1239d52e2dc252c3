package models

import (
	"github.com/mightyai/mighty-gateway/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	InferenceClient InferenceClient
	Config          *config.Config
}
