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
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docopt/docopt-go"

	"github.com/jakejohns/gpg-expires/config"
	fpr "github.com/jakejohns/gpg-expires/fingerprint"
	"github.com/jakejohns/gpg-expires/gpgwrapper"
	"github.com/jakejohns/gpg-expires/notice"
	"github.com/jakejohns/gpg-expires/out"
	"github.com/jakejohns/gpg-expires/ui"
)

const Version = "1.0.0"

var (
	gpg          gpgwrapper.GnuPG
	configDir    string
	globalConfig config.Config
)

type exitCode = int

func main() {
	os.Exit(Main())
}

// Main is the entry point for the `gpg-format-expiry-notice` command: turn
// fingerprints into per-recipient expiry notice emails.
func Main() exitCode {
	usage := fmt.Sprintf(`gpg-format-expiry-notice %s

Compose an email notice for each given key fingerprint, addressed to the
key's valid identities, warning that the key is about to expire. Notices are
encrypted to the key itself unless --plain is given.

Configuration file: %s
          Log file: %s

Usage:
	gpg-format-expiry-notice [options] [<fingerprint>...]

Options:
	-h --help                    Show this screen
	-o --output-directory=<dir>  Write one <FPR>.mail file per key into <dir>
	   --stdout                  Write notices to stdout instead of files
	-p --plain                   Don't encrypt the notice body
	-u --signas=<fpr>            Sign the notice body with this key
	-f --file=<path>             Read fingerprints from <path>, '-' for stdin
	-s --subject=<text>          Subject line for the notices`,
		Version,
		globalConfig.GetFilename(),
		out.GetLogFilename(),
	)

	log.Print("$ " + strings.Join(os.Args, " "))
	args, _ := docopt.ParseDoc(usage)

	outputDirectory := stringOption(args, "--output-directory")
	toStdout, _ := args.Bool("--stdout")

	if (outputDirectory != "") == toStdout {
		ui.PrintFailed("Give exactly one of --output-directory and --stdout")
		return 1
	}

	if outputDirectory != "" {
		if err := os.MkdirAll(outputDirectory, 0700); err != nil {
			ui.PrintFailed(fmt.Sprintf("Couldn't create output directory: %v", err))
			return 1
		}
	}

	plain, _ := args.Bool("--plain")

	var signAs *fpr.Fingerprint
	if signAsOption := stringOption(args, "--signas"); signAsOption != "" {
		parsed, err := fpr.Parse(signAsOption)
		if err != nil {
			ui.PrintFailed(fmt.Sprintf("Invalid --signas fingerprint '%s'", signAsOption))
			return 1
		}
		signAs = &parsed
	}

	subject := stringOption(args, "--subject")
	if subject == "" {
		subject = globalConfig.DefaultSubject()
	}

	rawFingerprints, err := gatherFingerprints(args)
	if err != nil {
		ui.PrintFailed(err.Error())
		return 1
	}

	if len(rawFingerprints) == 0 {
		ui.PrintWarning("No fingerprints given")
		return 0
	}

	if !gpg.IsWorking() {
		ui.PrintFailed("Couldn't run gpg. Is GnuPG installed?")
		return 1
	}

	now := time.Now()

	for _, raw := range rawFingerprints {
		fingerprint, err := fpr.Parse(raw)
		if err != nil {
			log.Printf("invalid fingerprint '%s': %v", raw, err)
			ui.PrintWarning("Invalid fingerprint " + raw)
			continue
		}

		aNotice, err := notice.Compose(&gpg, fingerprint, subject)
		if err != nil {
			ui.PrintWarning(fmt.Sprintf("Skipping %s: %v", fingerprint.Hex(), err))
			continue
		}

		rendered, err := aNotice.RenderWith(&gpg, !plain, signAs, now)
		if err != nil {
			ui.PrintWarning(fmt.Sprintf("Skipping %s: %v", fingerprint.Hex(), err))
			continue
		}

		if toStdout {
			out.Print(rendered)
			continue
		}

		filename := filepath.Join(outputDirectory, fingerprint.Hex()+".mail")
		if err := ioutil.WriteFile(filename, []byte(rendered), 0600); err != nil {
			ui.PrintWarning(fmt.Sprintf("Couldn't write %s: %v", filename, err))
			continue
		}
		log.Printf("wrote %s", filename)
	}

	return 0
}

// gatherFingerprints returns the raw fingerprint strings to process: the
// contents of --file if given ('-' meaning stdin), else the positional
// arguments.
func gatherFingerprints(args docopt.Opts) ([]string, error) {
	filename := stringOption(args, "--file")

	if filename == "" {
		positional, _ := args["<fingerprint>"].([]string)
		return positional, nil
	}

	var reader io.Reader
	if filename == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("couldn't read fingerprints from %s: %v", filename, err)
		}
		defer f.Close()
		reader = f
	}

	var fingerprints []string
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fingerprints = append(fingerprints, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read fingerprints from %s: %v", filename, err)
	}
	return fingerprints, nil
}

// stringOption returns the value docopt parsed for the given option, or ""
// if the option wasn't given.
func stringOption(args docopt.Opts, key string) string {
	value, err := args.String(key)
	if err != nil {
		return ""
	}
	return value
}
