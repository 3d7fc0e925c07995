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
	"log"
	"os"
	"strings"
	"time"

	"github.com/docopt/docopt-go"
	"golang.org/x/term"

	"github.com/jakejohns/gpg-expires/config"
	"github.com/jakejohns/gpg-expires/expiry"
	fpr "github.com/jakejohns/gpg-expires/fingerprint"
	"github.com/jakejohns/gpg-expires/gpgwrapper"
	"github.com/jakejohns/gpg-expires/out"
	"github.com/jakejohns/gpg-expires/scheduler"
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

// usage returns the docopt usage string. --capabilities and --before
// deliberately carry no docopt default: when the flag is absent they fall
// back to the config file, then to the built-in default.
func usage(configFilename string, logFilename string) string {
	return fmt.Sprintf(`gpg-expires %s

List OpenPGP keys from your gpg keyring which are about to expire.
If stdin isn't a terminal, it is read as a list of fingerprints to restrict
the output to.

Configuration file: %s
          Log file: %s

Usage:
	gpg-expires [options]

Options:
	-h --help                  Show this screen
	-q --quiet                 Don't report skipped fingerprints on stderr
	-w --warn                  Also list keys which never expire
	-a --after=<date-expr>     List keys expiring after this date [default: now]
	-b --before=<date-expr>    List keys expiring before this date
	   --all                   List already-expired keys too (floors the window at the epoch)
	-c --capabilities=<chars>  Capability flags to match, e.g. "esca"
	-f --format=<format>       Output format: fpr, fprdate, list or colon [default: fpr]`,
		Version,
		configFilename,
		logFilename,
	)
}

// Main is the entry point for the `gpg-expires` command: list keys from the
// keyring whose expiry falls inside a window.
func Main() exitCode {
	log.Print("$ " + strings.Join(os.Args, " "))
	args, _ := docopt.ParseDoc(usage(globalConfig.GetFilename(), out.GetLogFilename()))

	ensureCrontabStateMatchesConfig()

	quiet, _ := args.Bool("--quiet")
	warnOnUnset, _ := args.Bool("--warn")
	all, _ := args.Bool("--all")

	format, _ := args.String("--format")
	if !validFormat(format) {
		ui.PrintFailed(fmt.Sprintf("Invalid format '%s': expected fpr, fprdate, list or colon", format))
		return 1
	}

	capabilities := stringOption(args, "--capabilities", globalConfig.DefaultCapabilities())

	now := time.Now()

	after, err := expiry.ParseDateExpression(stringOption(args, "--after", "now"), now)
	if err != nil {
		ui.PrintFailed(fmt.Sprintf("Couldn't parse --after: %v", err))
		return 1
	}

	before, err := expiry.ParseDateExpression(
		stringOption(args, "--before", globalConfig.DefaultBefore()), now)
	if err != nil {
		ui.PrintFailed(fmt.Sprintf("Couldn't parse --before: %v", err))
		return 1
	}

	if all {
		after = time.Unix(0, 0)
	}

	if after.After(before) {
		ui.PrintFailed("--after must not be later than --before")
		return 1
	}

	window := expiry.Window{
		After:       after.Unix(),
		Before:      before.Unix(),
		WarnOnUnset: warnOnUnset,
	}

	if !gpg.IsWorking() {
		ui.PrintFailed("Couldn't run gpg. Is GnuPG installed?")
		return 1
	}

	restriction := readFingerprintRestriction(quiet)

	summaries, err := gpg.ListKeySummaries()
	if err != nil {
		ui.PrintFailed(fmt.Sprintf("Couldn't list keys: %v", err))
		return 1
	}

	if restriction != nil {
		summaries = restrictTo(summaries, restriction)
	}

	selected := expiry.FilterWindow(
		expiry.FilterCapabilities(summaries, capabilities), window)

	return printSummaries(selected, format)
}

func printSummaries(summaries []gpgwrapper.KeySummary, format string) exitCode {
	switch format {
	case "fpr":
		for _, summary := range summaries {
			out.Print(summary.Fingerprint.Hex() + "\n")
		}

	case "fprdate":
		for _, summary := range summaries {
			out.Print(fmt.Sprintf("%s %s\n",
				summary.Fingerprint.Hex(), formatExpiryDate(summary.ExpiryEpoch)))
		}

	case "colon":
		for _, summary := range summaries {
			out.Print(summary.Line() + "\n")
		}

	case "list":
		if len(summaries) == 0 {
			return 0
		}
		var fingerprints []fpr.Fingerprint
		for _, summary := range summaries {
			fingerprints = append(fingerprints, summary.Fingerprint)
		}
		listing, err := gpg.ListKeysForDisplay(fingerprints)
		if err != nil {
			ui.PrintFailed(fmt.Sprintf("Couldn't list keys: %v", err))
			return 1
		}
		out.Print(listing)
	}

	return 0
}

func formatExpiryDate(expiryEpoch int64) string {
	if expiryEpoch == 0 {
		return "never"
	}
	return time.Unix(expiryEpoch, 0).UTC().Format("2006-01-02")
}

// readFingerprintRestriction reads whitespace-separated fingerprints from
// stdin, but only when stdin isn't a terminal. Unparseable fingerprints are
// reported and skipped. A nil return means no restriction at all, which is
// different from an empty one.
func readFingerprintRestriction(quiet bool) []fpr.Fingerprint {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}

	restriction := []fpr.Fingerprint{}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := scanner.Text()
		fingerprint, err := fpr.Parse(word)
		if err != nil {
			log.Printf("invalid fingerprint '%s' on stdin: %v", word, err)
			if !quiet {
				ui.PrintWarning("Invalid fingerprint " + word)
			}
			continue
		}
		restriction = append(restriction, fingerprint)
	}
	return restriction
}

func restrictTo(summaries []gpgwrapper.KeySummary, restriction []fpr.Fingerprint) []gpgwrapper.KeySummary {
	var matched []gpgwrapper.KeySummary
	for _, summary := range summaries {
		if fpr.Contains(restriction, summary.Fingerprint) {
			matched = append(matched, summary)
		}
	}
	return matched
}

func validFormat(format string) bool {
	switch format {
	case "fpr", "fprdate", "list", "colon":
		return true
	}
	return false
}

// stringOption returns the value docopt parsed for the given option, or
// fallback if the option wasn't given.
func stringOption(args docopt.Opts, key string, fallback string) string {
	value, err := args.String(key)
	if err != nil || value == "" {
		return fallback
	}
	return value
}

func ensureCrontabStateMatchesConfig() {
	if globalConfig.RunFromCron() {
		crontabWasAdded, err := scheduler.Enable()
		if err != nil {
			ui.PrintWarning(fmt.Sprintf("Couldn't update crontab: %v", err))
			return
		}
		if crontabWasAdded {
			ui.PrintInfo(fmt.Sprintf(
				"Added gpg-expires to crontab.  Edit %s to remove.", globalConfig.GetFilename()))
		}
	} else {
		crontabWasRemoved, err := scheduler.Disable()
		if err != nil {
			ui.PrintWarning(fmt.Sprintf("Couldn't update crontab: %v", err))
			return
		}
		if crontabWasRemoved {
			ui.PrintInfo(fmt.Sprintf(
				"Removed gpg-expires from crontab.  Edit %s to add again.", globalConfig.GetFilename()))
		}
	}
}
