package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// Instance is one backend shard the proxy fans out to. ID is the stable key of the aggregate
// response; Title is a human label; URL is the absolute base URL (scheme, host, optional path prefix).
// Instances are immutable after NewInstance returns.
type Instance struct {
	ID    string
	Title string
	URL   *url.URL
}

// NewInstance validates and builds an Instance from raw configuration values: id must be non-empty
// after trimming, rawURL must parse as an absolute http or https URL with a host.
//
// Parameters: id - instance identifier; title - display title (may be empty); rawURL - base URL string.
//
// Returns: (Instance, nil) on success; (Instance{}, *InstanceConfigError with Index -1) on invalid id or URL.
// Callers that know the entry position (cmd.LoadConfig, myredis.InstanceSource) set Index themselves.
//
// Called from cmd.LoadConfig for YAML entries and from myredis.InstanceSource for Redis records.
func NewInstance(id, title, rawURL string) (Instance, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Instance{}, &InstanceConfigError{Index: -1, Reason: "id must be non-empty"}
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Instance{}, &InstanceConfigError{Index: -1, ID: id, Reason: "url is invalid: " + err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Instance{}, &InstanceConfigError{Index: -1, ID: id, Reason: "url scheme must be http|https"}
	}
	if u.Host == "" {
		return Instance{}, &InstanceConfigError{Index: -1, ID: id, Reason: "url host must be non-empty"}
	}
	return Instance{ID: id, Title: strings.TrimSpace(title), URL: u}, nil
}

// ValidateInstances checks a full instance list: non-empty, every entry has an ID and a URL, IDs are unique.
//
// Parameter instances - ordered list (usually built with NewInstance).
//
// Returns: nil when valid; *InstanceConfigError with Index of the first offending entry (-1 for an empty list).
//
// Called from service.NewInstanceRegistry.
func ValidateInstances(instances []Instance) error {
	if len(instances) == 0 {
		return &InstanceConfigError{Index: -1, Reason: "at least one instance is required"}
	}
	seen := make(map[string]struct{}, len(instances))
	for i, inst := range instances {
		if inst.ID == "" {
			return &InstanceConfigError{Index: i, Reason: "id must be non-empty"}
		}
		if inst.URL == nil {
			return &InstanceConfigError{Index: i, ID: inst.ID, Reason: "url is required"}
		}
		if _, dup := seen[inst.ID]; dup {
			return &InstanceConfigError{Index: i, ID: inst.ID, Reason: "duplicate id"}
		}
		seen[inst.ID] = struct{}{}
	}
	return nil
}

// InstanceConfigError is returned when an instance entry is invalid.
// Index is the entry position (0-based) or -1 when unknown or list-level; ID is the offending id if known.
type InstanceConfigError struct {
	Index  int
	ID     string
	Reason string
}

// Error returns a string like `instance[2] "eth": duplicate id`.
func (e *InstanceConfigError) Error() string {
	s := "instance[" + strconv.Itoa(e.Index) + "]"
	if e.ID != "" {
		s += " " + strconv.Quote(e.ID)
	}
	return s + ": " + e.Reason
}
