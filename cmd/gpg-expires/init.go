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

package main

import (
	"fmt"
	"os"

	"github.com/jakejohns/gpg-expires/config"
	"github.com/jakejohns/gpg-expires/gpgwrapper"
	"github.com/jakejohns/gpg-expires/out"
)

func init() {
	initConfigDir()
	initOutput()
	initConfig()
	initGpgWrapper()
}

func initConfigDir() {
	var err error
	configDir, err = config.Directory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get config directory: %v\n", err)
		os.Exit(1)
	}
}

func initOutput() {
	if err := out.SetupLogFile(configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up log file: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	configPointer, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open config file: %v\n", err)
		os.Exit(1)
	}
	globalConfig = *configPointer
}

func initGpgWrapper() {
	gpg = gpgwrapper.GnuPG{GpgPath: globalConfig.GpgPath()}
}
