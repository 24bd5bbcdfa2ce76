package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Descriptor is the minimal record of one source repository needed to issue a migrate request
type Descriptor struct {
	SourceURL   string  // Browse URL of the source repository
	FullName    string  // <owner>/<slug>
	Name        string  // Slug, used as the destination repository name
	Title       string  // Display name on the source host, informational only
	Description *string // nil when the source has no description
}

// NewDescriptor derives a Descriptor from a source entry. webBaseURL is the browse host
// prefix such as "https://bitbucket.org" without trailing slash.
func NewDescriptor(webBaseURL, fullName, title string, description *string) (*Descriptor, error) {
	owner, slug, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || slug == "" || strings.Contains(slug, "/") {
		return nil, goerr.New("invalid repository full name", goerr.V("full_name", fullName))
	}

	return &Descriptor{
		SourceURL:   webBaseURL + "/" + fullName,
		FullName:    fullName,
		Name:        slug,
		Title:       title,
		Description: description,
	}, nil
}
