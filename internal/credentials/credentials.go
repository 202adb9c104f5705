// Package credentials loads the login/password pair used for sign-in.
// The pair is read once, exchanged for a session token, and not kept
// anywhere else.
package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/common"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Load reads credentials from path. Supported formats, chosen by file
// extension:
//
//	.json — object {"login": "...", "password": "..."}
//	.env  — key=value lines; '#' comments and blank lines are skipped
//
// Any other extension fails before a single network call is made. A file
// with a login but no password falls back to a no-echo terminal prompt.
func Load(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read credentials: %v", common.ErrConfig, err)
	}

	var creds *Credentials
	switch ext := filepath.Ext(path); ext {
	case ".json":
		creds, err = parseJSON(data)
	case ".env":
		creds, err = parseEnv(data)
	default:
		return nil, fmt.Errorf("%w: unsupported credentials format %q in %s",
			common.ErrConfig, ext, path)
	}
	if err != nil {
		return nil, err
	}

	if creds.Login == "" {
		return nil, fmt.Errorf("%w: no login in %s", common.ErrConfig, path)
	}
	if creds.Password == "" {
		pw, err := promptPassword()
		if err != nil {
			return nil, fmt.Errorf("%w: no password in %s and prompt failed: %v",
				common.ErrConfig, path, err)
		}
		creds.Password = pw
	}
	return creds, nil
}

func parseJSON(data []byte) (*Credentials, error) {
	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: parse credentials json: %v", common.ErrConfig, err)
	}
	return &c, nil
}

func parseEnv(data []byte) (*Credentials, error) {
	var c Credentials
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: malformed credentials line %q", common.ErrConfig, line)
		}
		switch key {
		case "login":
			c.Login = value
		case "password":
			c.Password = value
		}
	}
	return &c, nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
