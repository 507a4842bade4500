package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Envelope struct {
	Server    Server    `yaml:"server"`
	Detection Detection `yaml:"detection"`
}

type Server struct {
	Address string   `yaml:"address"`
	Tokens  []string `yaml:"tokens"`
}

// Detection holds the default parameters applied to API requests that
// do not override them with query parameters.
type Detection struct {
	MinLength int      `yaml:"min_length"`
	Limit     int      `yaml:"limit"`
	Only      []string `yaml:"only"`
	Exclude   []string `yaml:"exclude"`
}

func LoadConfigFromFile(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	envelope := &Envelope{}
	if err := yaml.Unmarshal(data, envelope); err != nil {
		return nil, err
	}
	return envelope, nil
}
