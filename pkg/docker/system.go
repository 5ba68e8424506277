package docker

// SystemVersion is the body of GET /version.
type SystemVersion struct {
	Version       *string `json:"Version,omitempty"       yaml:"version,omitempty"`
	APIVersion    *string `json:"ApiVersion,omitempty"    yaml:"api_version,omitempty"`
	MinAPIVersion *string `json:"MinAPIVersion,omitempty" yaml:"min_api_version,omitempty"`
	GitCommit     *string `json:"GitCommit,omitempty"     yaml:"git_commit,omitempty"`
	GoVersion     *string `json:"GoVersion,omitempty"     yaml:"go_version,omitempty"`
	Os            *string `json:"Os,omitempty"            yaml:"os,omitempty"`
	Arch          *string `json:"Arch,omitempty"          yaml:"arch,omitempty"`
	KernelVersion *string `json:"KernelVersion,omitempty" yaml:"kernel_version,omitempty"`
	BuildTime     *string `json:"BuildTime,omitempty"     yaml:"build_time,omitempty"`
}
