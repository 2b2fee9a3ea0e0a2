package shared

import (
	"fmt"
	"net/url"
	"strings"
)

func GetHostName(userUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(userUrl)
	if urlError != nil {
		return "", fmt.Errorf("failed to parse user URL '%s': %v", userUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

func MakeFullMoniker(hostName, handle string) string {
	return "@" + handle + "@" + hostName
}

// IsLocalIRI tells if an IRI is rooted at this server's base URL.
func IsLocalIRI(iri, baseUrl string) bool {
	return strings.HasPrefix(iri, baseUrl)
}
