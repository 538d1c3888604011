package config

import (
	"os"
	"path/filepath"

	"github.com/avelkner/innkeeper/internal/util"
)

type Config struct {
	Env     string
	Addr    string
	DataDir string
	MQURL   string
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	env := os.Getenv("APP_ENV")
	addr := os.Getenv("ADDR")
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	mqURL := os.Getenv("RABBIT_MQ_URL")
	return &Config{
		Env:     env,
		Addr:    addr,
		DataDir: dataDir,
		MQURL:   mqURL,
	}, nil
}

// Backing file locations. Stores receive their path at construction,
// nothing reads these from package state.

func (c *Config) HotelsFile() string {
	return filepath.Join(c.DataDir, "hotels.json")
}

func (c *Config) CustomersFile() string {
	return filepath.Join(c.DataDir, "customers.json")
}

func (c *Config) ReservationsFile() string {
	return filepath.Join(c.DataDir, "reservations.json")
}
