package docker

// VolumeList is the body of GET /volumes.
type VolumeList struct {
	Volumes  []Volume `json:"Volumes"            yaml:"volumes"`
	Warnings []string `json:"Warnings,omitempty" yaml:"warnings,omitempty"`
}

// Volume represents a named volume.
type Volume struct {
	Name       *string           `json:"Name,omitempty"       yaml:"name,omitempty"`
	Driver     *string           `json:"Driver,omitempty"     yaml:"driver,omitempty"`
	Mountpoint *string           `json:"Mountpoint,omitempty" yaml:"mountpoint,omitempty"`
	CreatedAt  *string           `json:"CreatedAt,omitempty"  yaml:"created_at,omitempty"`
	Status     map[string]string `json:"Status,omitempty"     yaml:"status,omitempty"`
	Labels     map[string]string `json:"Labels,omitempty"     yaml:"labels,omitempty"`
	Scope      *string           `json:"Scope,omitempty"      yaml:"scope,omitempty"`
	Options    map[string]string `json:"Options,omitempty"    yaml:"options,omitempty"`
	UsageData  *VolumeUsageData  `json:"UsageData,omitempty"  yaml:"usage_data,omitempty"`
}

// VolumeUsageData reports disk usage. The daemon sends -1 when the value is
// not available.
type VolumeUsageData struct {
	Size     *int64 `json:"Size,omitempty"     yaml:"size,omitempty"`
	RefCount *int64 `json:"RefCount,omitempty" yaml:"ref_count,omitempty"`
}
