package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
)

type Reader interface {
	Read() (*Config, error)
}

// EnvReader reads the configuration from the environment only.
type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// FileReader reads a YAML file, then applies environment overrides.
type FileReader struct {
	Path string
}

func NewFileReader(path string) FileReader {
	return FileReader{Path: path}
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadConfig(r.Path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", r.Path, err)
	}
	return cfg, nil
}

// Read picks the file reader when path is set and the env reader otherwise.
func Read(path string) (*Config, error) {
	var r Reader = NewEnvReader()
	if path != "" {
		r = NewFileReader(path)
	}
	return r.Read()
}
