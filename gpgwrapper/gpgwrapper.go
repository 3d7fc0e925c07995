// gpgwrapper calls out to the system GnuPG binary

package gpgwrapper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"

	fpr "github.com/jakejohns/gpg-expires/fingerprint"
)

// DefaultGpgPath is the binary used when GnuPG.GpgPath is left empty.
const DefaultGpgPath = "gpg2"

var ErrNoVersionStringFound = errors.New("version string not found in GPG output")

func ErrProblemExecutingGPG(gpgStderr string, arguments ...string) error {
	return fmt.Errorf("error executing GPG with %s: %s", arguments, gpgStderr)
}

var VersionRegexp = regexp.MustCompile(`gpg \(GnuPG.*\) (\d+\.\d+\.\d+)`)

// GnuPG wraps an external gpg binary. The zero value runs `gpg2` against the
// user's default keyring.
type GnuPG struct {

	// GpgPath optionally overrides the gpg binary that gets executed.
	GpgPath string

	// HomeDir optionally sets --homedir for every invocation, pointing
	// gpg at an alternative keyring directory.
	HomeDir string
}

// Version returns the GnuPG version string, e.g. "2.2.4"
func (g *GnuPG) Version() (string, error) {
	outString, _, err := g.run("--version")

	if err != nil {
		err = fmt.Errorf("problem running GPG, %v", err)
		return "", err
	}

	version, err := parseVersionString(outString)

	if err != nil {
		err = fmt.Errorf("problem parsing version string, %v", err)
		return "", err
	}

	return version, nil
}

// IsWorking checks whether GPG is working
func (g *GnuPG) IsWorking() bool {
	_, err := g.Version()

	return err == nil
}

// ListKeySummaries lists every public key in the keyring as KeySummaries,
// one per primary key and one per subkey.
// Extra arguments (for example a search term) are appended to the
// --list-keys invocation.
func (g *GnuPG) ListKeySummaries(extraArgs ...string) ([]KeySummary, error) {
	args := []string{
		"--with-colons",
		"--with-fingerprint",
		"--fixed-list-mode",
		"--list-keys",
	}
	args = append(args, extraArgs...)

	stdout, _, err := g.run(args...)
	if err != nil {
		return nil, fmt.Errorf("error running 'gpg %s': %v", strings.Join(args, " "), err)
	}

	return parseKeySummaries(stdout), nil
}

// ListKeysForDisplay returns gpg's own human-readable listing of the given
// keys, used when the caller wants display output rather than records.
func (g *GnuPG) ListKeysForDisplay(fingerprints []fpr.Fingerprint) (string, error) {
	args := []string{"--list-keys"}
	for _, fingerprint := range fingerprints {
		args = append(args, fingerprint.Hex())
	}

	stdout, _, err := g.run(args...)
	if err != nil {
		return "", fmt.Errorf("error running 'gpg %s': %v", strings.Join(args, " "), err)
	}
	return stdout, nil
}

// LookupKey fetches the key with the given fingerprint from the keyring and
// returns its acceptable user IDs and expiry time.
// A fingerprint that doesn't resolve to exactly one key is an error.
func (g *GnuPG) LookupKey(fingerprint fpr.Fingerprint) (*KeyDetails, error) {
	args := []string{
		"--with-colons",
		"--with-fingerprint",
		"--fixed-list-mode",
		"--list-keys",
		fingerprint.Hex(),
	}

	stdout, stderr, err := g.run(args...)
	if err != nil {
		return nil, fmt.Errorf("gpg couldn't find key %s: %v, %s", fingerprint.Hex(), err, stderr)
	}

	return parseKeyDetails(stdout, fingerprint)
}

func parseVersionString(gpgStdout string) (string, error) {
	match := VersionRegexp.FindStringSubmatch(gpgStdout)

	if match == nil {
		return "", ErrNoVersionStringFound
	}

	return match[1], nil
}

func (g *GnuPG) run(arguments ...string) (stdout string, stderr string, err error) {
	fullArguments := g.prependGlobalArguments(arguments...)
	cmd := exec.Command(g.gpgPath(), fullArguments...)

	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	cmd.Stdout = &outBuffer
	cmd.Stderr = &errBuffer

	if err := cmd.Run(); err != nil {
		return outBuffer.String(), errBuffer.String(),
			ErrProblemExecutingGPG(errBuffer.String(), fullArguments...)
	}

	return outBuffer.String(), errBuffer.String(), nil
}

func (g *GnuPG) runWithStdin(textToSend string, arguments ...string) (stdout string, stderr string, err error) {
	fullArguments := g.prependGlobalArguments(arguments...)
	cmd := exec.Command(g.gpgPath(), fullArguments...)

	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		return "", "", fmt.Errorf("failed to get stdin pipe '%s'", err)
	}

	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	cmd.Stdout = &outBuffer
	cmd.Stderr = &errBuffer

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("failed to start gpg: %v", err)
	}

	io.WriteString(stdinPipe, textToSend)
	stdinPipe.Close()

	if err := cmd.Wait(); err != nil {
		return outBuffer.String(), errBuffer.String(),
			fmt.Errorf("GPG failed with error '%s', stderr said '%s'", err, errBuffer.String())
	}

	return outBuffer.String(), errBuffer.String(), nil
}

func (g *GnuPG) gpgPath() string {
	if g.GpgPath != "" {
		return g.GpgPath
	}
	return DefaultGpgPath
}

func (g *GnuPG) prependGlobalArguments(arguments ...string) []string {
	globalArguments := []string{
		"--batch",
		"--no-tty",
	}
	if g.HomeDir != "" {
		homeDirArgs := []string{"--homedir", g.HomeDir}
		globalArguments = append(globalArguments, homeDirArgs...)
	}
	return append(globalArguments, arguments...)
}
