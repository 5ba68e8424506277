package docker

// Image represents an entry of GET /images/json.
type Image struct {
	ID          *string           `json:"Id,omitempty"          yaml:"id,omitempty"`
	ParentID    *string           `json:"ParentId,omitempty"    yaml:"parent_id,omitempty"`
	RepoTags    []string          `json:"RepoTags,omitempty"    yaml:"repo_tags,omitempty"`
	RepoDigests []string          `json:"RepoDigests,omitempty" yaml:"repo_digests,omitempty"`
	Created     *int64            `json:"Created,omitempty"     yaml:"created,omitempty"`
	Size        *int64            `json:"Size,omitempty"        yaml:"size,omitempty"`
	VirtualSize *int64            `json:"VirtualSize,omitempty" yaml:"virtual_size,omitempty"`
	SharedSize  *int64            `json:"SharedSize,omitempty"  yaml:"shared_size,omitempty"`
	Labels      map[string]string `json:"Labels,omitempty"      yaml:"labels,omitempty"`
	Containers  *int64            `json:"Containers,omitempty"  yaml:"containers,omitempty"`
}
