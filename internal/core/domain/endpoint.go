package domain

import (
	"strings"
)

// HubEndpoint identifies one hub on a messaging service.
//
// It is constructed once at startup and never mutated. The hub name is
// case-folded to lowercase at construction because the service treats
// hub identity case-insensitively; no other normalization is performed.
type HubEndpoint struct {
	// BaseURL is the service endpoint, e.g. "https://demo.service.example.com".
	BaseURL string

	// Hub is the lowercased hub name.
	Hub string
}

// NewHubEndpoint creates a HubEndpoint for the given service endpoint
// and hub name. Hub name characters are not validated here; a malformed
// name surfaces as an HTTP error from the service, not a local failure.
func NewHubEndpoint(baseURL, hub string) HubEndpoint {
	return HubEndpoint{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Hub:     strings.ToLower(hub),
	}
}

// BasePath returns the hub-scoped management API base path:
//
//	{endpoint}/api/v1/hubs/{hub}
func (e HubEndpoint) BasePath() string {
	return e.BaseURL + "/api/v1/hubs/" + e.Hub
}

// ConnectionInfo holds the parsed parts of a service connection string.
type ConnectionInfo struct {
	Endpoint  string
	AccessKey string
	Version   string
}

// ParseConnectionString parses a connection string of the form
//
//	Endpoint=https://...;AccessKey=...;Version=1.0;
//
// Key matching is case-insensitive. Unknown keys are ignored so that
// newer connection strings keep working with older clients.
func ParseConnectionString(s string) (ConnectionInfo, error) {
	var info ConnectionInfo

	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, found := strings.Cut(part, "=")
		if !found {
			return ConnectionInfo{}, ErrBadConnectionString.WithDetails(
				"expected key=value segments separated by ';'")
		}

		switch strings.ToLower(key) {
		case "endpoint":
			info.Endpoint = strings.TrimSuffix(value, "/")
		case "accesskey":
			info.AccessKey = value
		case "version":
			info.Version = value
		}
	}

	if info.Endpoint == "" {
		return ConnectionInfo{}, ErrBadConnectionString.WithDetails("missing Endpoint")
	}
	if info.AccessKey == "" {
		return ConnectionInfo{}, ErrBadConnectionString.WithDetails("missing AccessKey")
	}

	return info, nil
}
