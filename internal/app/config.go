package app

import (
	"github.com/skillpath/skillpath-backend/internal/pathgraph"
	"github.com/skillpath/skillpath-backend/internal/pkg/envutil"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type Config struct {
	Port        string
	Environment string
	Version     string

	// PassingThreshold is the score/maxScore ratio a finish report must
	// reach; injected into the enrollment service, never read ambiently.
	PassingThreshold float64
	ExtensionMode    pathgraph.ExtensionMode
}

func LoadConfig(log *logger.Logger) Config {
	mode := pathgraph.ExtensionMode(envutil.Get("UNIT_EXTENSION_MODE", string(pathgraph.ModeSelfLearn), log))
	if mode != pathgraph.ModeSelfLearn && mode != pathgraph.ModeSearch {
		log.Warn("unknown unit extension mode, falling back to self_learn", "mode", string(mode))
		mode = pathgraph.ModeSelfLearn
	}
	return Config{
		Port:             envutil.Get("PORT", "8080", log),
		Environment:      envutil.Get("APP_ENV", "development", log),
		Version:          envutil.Get("APP_VERSION", "dev", log),
		PassingThreshold: envutil.GetFloat("PASSING_THRESHOLD", 0.5, log),
		ExtensionMode:    mode,
	}
}
