package integrationtest

import (
	"sync"

	"github.com/humanbelnik/kinomatch/internal/config"
)

var (
	cfg     *config.Config
	cfgOnce sync.Once
)

// getConfig reads the environment only; flag parsing belongs to the test
// binary.
func getConfig() *config.Config {
	cfgOnce.Do(func() {
		cfg = config.FromEnv()
	})
	return cfg
}
