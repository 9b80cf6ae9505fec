// Package config exposes Jadebook's env-backed configuration. Values
// come from the process environment seeded by a dotenv file.
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads the dotenv file once and returns the shared instance.
// A missing file is fatal, the server cannot run unconfigured.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}
