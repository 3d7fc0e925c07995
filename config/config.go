// Copyright 2019 Jake Johns
//
// This file is part of gpg-expires, a pair of tools for finding OpenPGP
// keys which are about to expire.
//
// gpg-expires is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpg-expires is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with gpg-expires.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

// Directory returns the directory holding the config file and log, creating
// it if necessary. GPG_EXPIRES_DIR overrides the default of
// ~/.config/gpg-expires
func Directory() (string, error) {
	if dirFromEnv := os.Getenv("GPG_EXPIRES_DIR"); dirFromEnv != "" {
		return dirFromEnv, nil
	}

	homeDirectory, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	directory := filepath.Join(homeDirectory, ".config", "gpg-expires")
	if err := os.MkdirAll(directory, 0700); err != nil {
		return "", err
	}
	return directory, nil
}

// Load attempts to load `config.toml` from inside the given directory.
// If the file is not present, Load will try to create it and will return an
// error if it can't.
// If the file is present but doesn't parse correctly, it will return an error.
func Load(directory string) (*Config, error) {
	return load(directory, &fileFunctionsPassthrough{})
}

func load(directory string, helper fileFunctionsInterface) (*Config, error) {
	configFilename := path.Join(directory, "config.toml")

	if _, err := helper.OsStat(configFilename); os.IsNotExist(err) {
		// file does not exist, write out default config file
		err = helper.WriteFile(configFilename, []byte(defaultConfigFile), 0600)

		if err != nil {
			return nil, fmt.Errorf("%s didn't exist and failed to create it: %v", configFilename, err)
		}
	}

	f, err := helper.OsOpen(configFilename)

	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", configFilename, err)
	}
	config, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", configFilename, err)
	}
	config.filename = configFilename
	return config, nil
}

type Config struct {
	parsedConfig   tomlConfig
	parsedMetadata toml.MetaData

	filename string
}

func (c *Config) GetFilename() string {
	return c.filename
}

// GpgPath returns the gpg binary to run, or "" meaning use the built-in
// default.
func (c *Config) GpgPath() string {
	return c.parsedConfig.GpgPath
}

// DefaultCapabilities returns the capability set used when -c isn't given on
// the command line.
func (c *Config) DefaultCapabilities() string {
	if !c.parsedMetadata.IsDefined("default_capabilities") {
		return defaultCapabilities
	}
	return c.parsedConfig.DefaultCapabilities
}

// DefaultBefore returns the date expression used as the upper window bound
// when -b isn't given on the command line.
func (c *Config) DefaultBefore() string {
	if !c.parsedMetadata.IsDefined("default_before") {
		return defaultBefore
	}
	return c.parsedConfig.DefaultBefore
}

// DefaultSubject returns the configured notice subject, or "" meaning use
// the built-in default.
func (c *Config) DefaultSubject() string {
	return c.parsedConfig.DefaultSubject
}

// RunFromCron returns whether gpg-expires should keep a crontab entry that
// runs it periodically.
func (c *Config) RunFromCron() bool {
	if !c.parsedMetadata.IsDefined("run_from_cron") {
		return defaultRunFromCron
	}
	return c.parsedConfig.RunFromCron
}

func parse(r io.Reader) (*Config, error) {
	var parsedConfig tomlConfig
	metadata, err := toml.NewDecoder(r).Decode(&parsedConfig)

	if err != nil {
		return nil, fmt.Errorf("error decoding toml: %v", err)
	}

	if len(metadata.Undecoded()) > 0 {
		// found config variables that we don't know how to match to
		// the tomlConfig structure
		return nil, fmt.Errorf("encountered unrecognised config keys: %v", metadata.Undecoded())
	}

	config := Config{
		parsedConfig:   parsedConfig,
		parsedMetadata: metadata,
	}
	return &config, nil
}

type tomlConfig struct {
	GpgPath             string `toml:"gpg_path"`
	DefaultCapabilities string `toml:"default_capabilities"`
	DefaultBefore       string `toml:"default_before"`
	DefaultSubject      string `toml:"default_subject"`
	RunFromCron         bool   `toml:"run_from_cron"`
}

const defaultCapabilities = "e"
const defaultBefore = "30d"
const defaultRunFromCron = false

const defaultConfigFile string = `# gpg-expires configuration file
#
# # gpg_path overrides which gpg binary gets run, e.g. "/usr/bin/gpg"
#
# gpg_path = "gpg2"
#
# # default_capabilities is the capability set used when -c / --capabilities
# # isn't given: keys are listed when they have at least one of these
# # capability flags (e=encrypt, s=sign, c=certify, a=authenticate)
#
# default_capabilities = "e"
#
# # default_before is the date expression used as the upper window bound
# # when -b / --before isn't given, e.g. "30d", "6w", "2020-01-01"
#
# default_before = "30d"
#
# # default_subject is used for notices when -s / --subject isn't given
#
# default_subject = "Your OpenPGP key is about to expire"
#
# # run_from_cron allows gpg-expires to add itself to your crontab
# # - run 'crontab -l' to see the lines added to crontab
# # - set to false and re-run gpg-expires to remove the lines from crontab
#
# run_from_cron = false
`
