package model

// MigrateOptions selects which sub-resources the destination imports along with the code.
// Every toggle defaults to false.
type MigrateOptions struct {
	Mirror       bool
	Private      bool
	Issues       bool
	Labels       bool
	Milestones   bool
	PullRequests bool
	Releases     bool
	Wiki         bool
}

// MigrateRequest is the JSON body of Gitea's POST /api/v1/repos/migrate
type MigrateRequest struct {
	CloneAddr   string  `json:"clone_addr"`
	RepoOwner   string  `json:"repo_owner"`
	RepoName    string  `json:"repo_name"`
	Description *string `json:"description"`

	Mirror       bool `json:"mirror"`
	Private      bool `json:"private"`
	Issues       bool `json:"issues"`
	Labels       bool `json:"labels"`
	Milestones   bool `json:"milestones"`
	PullRequests bool `json:"pull_requests"`
	Releases     bool `json:"releases"`
	Wiki         bool `json:"wiki"`
}

// NewMigrateRequest builds the migrate payload for desc. The clone address embeds the source
// credentials; see EmbedCredentials.
func NewMigrateRequest(desc *Descriptor, owner string, creds Credentials, opts MigrateOptions) (*MigrateRequest, error) {
	cloneAddr, err := EmbedCredentials(desc.SourceURL, creds)
	if err != nil {
		return nil, err
	}

	return &MigrateRequest{
		CloneAddr:    cloneAddr,
		RepoOwner:    owner,
		RepoName:     desc.Name,
		Description:  desc.Description,
		Mirror:       opts.Mirror,
		Private:      opts.Private,
		Issues:       opts.Issues,
		Labels:       opts.Labels,
		Milestones:   opts.Milestones,
		PullRequests: opts.PullRequests,
		Releases:     opts.Releases,
		Wiki:         opts.Wiki,
	}, nil
}
