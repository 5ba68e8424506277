package docker

// Secret represents a swarm secret. The daemon never returns the secret data.
type Secret struct {
	ID        *string        `json:"ID,omitempty"        yaml:"id,omitempty"`
	Version   *ObjectVersion `json:"Version,omitempty"   yaml:"version,omitempty"`
	CreatedAt *string        `json:"CreatedAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *string        `json:"UpdatedAt,omitempty" yaml:"updated_at,omitempty"`
	Spec      *SecretSpec    `json:"Spec,omitempty"      yaml:"spec,omitempty"`
}

// SecretSpec is the user-provided part of a secret. Data is base64 encoded.
type SecretSpec struct {
	Name   *string           `json:"Name,omitempty"   yaml:"name,omitempty"`
	Labels map[string]string `json:"Labels,omitempty" yaml:"labels,omitempty"`
	Data   *string           `json:"Data,omitempty"   yaml:"data,omitempty"`
	Driver *Driver           `json:"Driver,omitempty" yaml:"driver,omitempty"`
}

// ObjectVersion is the version index of a swarm object, used for
// optimistic concurrency on updates.
type ObjectVersion struct {
	Index *uint64 `json:"Index,omitempty" yaml:"index,omitempty"`
}

// IDResponse is the body returned by create operations.
type IDResponse struct {
	ID string `json:"ID" yaml:"id"`
}
