package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const fileName = ".bolt"

// Project holds the settings read from a project's .bolt file.
type Project struct {
	// File is the config file that was read, empty when none exists.
	File  string
	Paths map[string]string
}

// Load reads the .bolt config file in root. A missing file yields an empty
// Project; a file that exists but cannot be parsed is an error.
func Load(root string) (*Project, error) {
	v := viper.New()
	v.SetConfigName(fileName)
	v.AddConfigPath(root)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return &Project{Paths: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("reading bolt config in %s: %w", root, err)
	}

	return &Project{
		File:  v.ConfigFileUsed(),
		Paths: v.GetStringMapString("paths"),
	}, nil
}
