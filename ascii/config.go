package ascii

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoConfig reports that no usable logo config file exists.
var ErrNoConfig = errors.New("no logo config")

// configRel is the config file location relative to the user's home directory.
var configRel = filepath.Join(".config", "catfetch", "config")

// escapes maps the two-character textual escapes accepted in a config file to
// the text they stand for. The hexadecimal ESC notation is handled separately
// because its token is four characters long.
var escapes = map[byte]string{
	'n':  "\n",
	't':  "\t",
	'r':  "\r",
	'"':  "\"",
	'\'': "'",
	'\\': "\\",
}

const escToken = `\x1b`

// Unescape replaces the textual escapes \x1b, \n, \t, \r, \", \' and \\ in s
// with the characters they denote. Input is scanned once from left to right,
// so the output of one substitution never takes part in another, and any
// other backslash sequence is left untouched.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		if strings.HasPrefix(s[i:], escToken) {
			b.WriteByte('\x1b')
			i += len(escToken) - 1
			continue
		}
		if r, ok := escapes[s[i+1]]; ok {
			b.WriteString(r)
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ConfigPath returns the path of the user's logo config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, configRel), nil
}

// ReadConfig reads the logo stored at path and unescapes it. It returns an
// error wrapping ErrNoConfig when the file is missing or blank.
func ReadConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", ErrNoConfig, path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNoConfig, path)
	}
	return Unescape(string(data)), nil
}

// Loader resolves the logo to display.
type Loader struct {
	// Path overrides the config file location; empty means ConfigPath.
	Path   string
	Logger *slog.Logger
}

// Load returns the user's config logo if one is readable, otherwise the
// built-in logo for kind. Config problems are logged, never returned.
func (l *Loader) Load(kind int) string {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	path := l.Path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			logger.Debug("using built-in logo", "kind", kind, "reason", err)
			return Builtin(kind)
		}
		path = p
	}

	logo, err := ReadConfig(path)
	if err != nil {
		logger.Debug("using built-in logo", "kind", kind, "reason", err)
		return Builtin(kind)
	}
	logger.Debug("loaded logo from config", "path", path)
	return logo
}
