package out

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var Outputter OutputterInterface = &TerminalOutputter{}

var logFilename string

// Print writes a message to primary output (stdout).
func Print(message string) {
	Outputter.Print(message)
}

// PrintError writes a message to the diagnostic stream (stderr). Diagnostics
// are never mixed into primary output, so primary output stays pipeable.
func PrintError(message string) {
	Outputter.PrintError(message)
}

// SetupLogFile points the log package at a log file inside the given
// directory.
func SetupLogFile(directory string) error {
	logFilename = filepath.Join(directory, "log")

	f, err := os.OpenFile(logFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("error opening log file %s: %v", logFilename, err)
	}

	log.SetOutput(f)
	return nil
}

// GetLogFilename returns the filename set up by SetupLogFile, or "" if logs
// aren't going to a file.
func GetLogFilename() string {
	return logFilename
}

type OutputterInterface interface {
	Print(message string)
	PrintError(message string)
}

type TerminalOutputter struct{}

func (o *TerminalOutputter) Print(message string) {
	fmt.Print(message)
}

func (o *TerminalOutputter) PrintError(message string) {
	fmt.Fprint(os.Stderr, message)
}

// RecordingOutputter captures output for tests.
type RecordingOutputter struct {
	Output string
	Errors string
}

func (o *RecordingOutputter) Print(message string) {
	o.Output += message
}

func (o *RecordingOutputter) PrintError(message string) {
	o.Errors += message
}
