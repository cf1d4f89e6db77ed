// Package netrc resolves basic-auth credentials for artifact servers from
// the user's ~/.netrc file.
package netrc

import (
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/trustedfirmware/lavagen/log"

	"github.com/mitchellh/go-homedir"
)

// BasicAuth is a login/password pair for one machine.
type BasicAuth struct {
	User     string
	Password string
}

var machines map[string]BasicAuth

func parseNetrc(contents string) map[string]BasicAuth {
	result := map[string]BasicAuth{}
	currentMachine := ""

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "machine") {
			currentMachine = strings.TrimSpace(strings.TrimPrefix(line, "machine"))
		} else if strings.HasPrefix(line, "login") {
			if currentMachine != "" {
				auth := result[currentMachine]
				auth.User = strings.TrimSpace(strings.TrimPrefix(line, "login"))
				result[currentMachine] = auth
			}
		} else if strings.HasPrefix(line, "password") {
			if currentMachine != "" {
				auth := result[currentMachine]
				auth.Password = strings.TrimSpace(strings.TrimPrefix(line, "password"))
				result[currentMachine] = auth
			}
		}
	}
	return result
}

func load() map[string]BasicAuth {
	homeDir, err := homedir.Dir()
	if err != nil {
		log.Warning("Unable to find the home directory. netrc not parsed.\n")
		return map[string]BasicAuth{}
	}

	netrcPath := path.Join(homeDir, ".netrc")
	contents, err := os.ReadFile(netrcPath)
	if err != nil {
		log.Debug("No netrc file at %q.\n", netrcPath)
		return map[string]BasicAuth{}
	}

	return parseNetrc(string(contents))
}

// GetAuthForUrl returns credentials for the host of `urlString`, or nil if
// none are configured.
func GetAuthForUrl(urlString string) *BasicAuth {
	if machines == nil {
		machines = load()
	}

	url, err := url.Parse(urlString)
	if err != nil {
		log.Warning("Invalid URL %q.\n", urlString)
		return nil
	}

	if auth, ok := machines[url.Hostname()]; ok {
		return &auth
	}

	return nil
}
