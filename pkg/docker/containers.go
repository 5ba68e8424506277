package docker

// Container represents an entry of GET /containers/json.
type Container struct {
	ID              *string           `json:"Id,omitempty"              yaml:"id,omitempty"`
	Names           []string          `json:"Names,omitempty"           yaml:"names,omitempty"`
	Image           *string           `json:"Image,omitempty"           yaml:"image,omitempty"`
	ImageID         *string           `json:"ImageID,omitempty"         yaml:"image_id,omitempty"`
	Command         *string           `json:"Command,omitempty"         yaml:"command,omitempty"`
	Created         *int64            `json:"Created,omitempty"         yaml:"created,omitempty"`
	Ports           []Port            `json:"Ports,omitempty"           yaml:"ports,omitempty"`
	SizeRw          *int64            `json:"SizeRw,omitempty"          yaml:"size_rw,omitempty"`
	SizeRootFs      *int64            `json:"SizeRootFs,omitempty"      yaml:"size_root_fs,omitempty"`
	Labels          map[string]string `json:"Labels,omitempty"          yaml:"labels,omitempty"`
	State           *string           `json:"State,omitempty"           yaml:"state,omitempty"`
	Status          *string           `json:"Status,omitempty"          yaml:"status,omitempty"`
	HostConfig      *HostConfig       `json:"HostConfig,omitempty"      yaml:"host_config,omitempty"`
	NetworkSettings *NetworkSettings  `json:"NetworkSettings,omitempty" yaml:"network_settings,omitempty"`
	Mounts          []Mount           `json:"Mounts,omitempty"          yaml:"mounts,omitempty"`
}

// Port is a port mapping of a container.
type Port struct {
	IP          *string `json:"IP,omitempty"          yaml:"ip,omitempty"`
	PrivatePort *int    `json:"PrivatePort,omitempty" yaml:"private_port,omitempty"`
	PublicPort  *int    `json:"PublicPort,omitempty"  yaml:"public_port,omitempty"`
	Type        *string `json:"Type,omitempty"        yaml:"type,omitempty"`
}

// HostConfig is the subset of host configuration reported in container listings.
type HostConfig struct {
	NetworkMode *string `json:"NetworkMode,omitempty" yaml:"network_mode,omitempty"`
}

// NetworkSettings holds the networks a container is attached to, keyed by network name.
type NetworkSettings struct {
	Networks map[string]EndpointSettings `json:"Networks,omitempty" yaml:"networks,omitempty"`
}

// EndpointSettings describes a container's attachment to one network.
type EndpointSettings struct {
	IPAMConfig          *EndpointIPAMConfig `json:"IPAMConfig,omitempty"          yaml:"ipam_config,omitempty"`
	Links               []string            `json:"Links,omitempty"               yaml:"links,omitempty"`
	Aliases             []string            `json:"Aliases,omitempty"             yaml:"aliases,omitempty"`
	NetworkID           *string             `json:"NetworkID,omitempty"           yaml:"network_id,omitempty"`
	EndpointID          *string             `json:"EndpointID,omitempty"          yaml:"endpoint_id,omitempty"`
	Gateway             *string             `json:"Gateway,omitempty"             yaml:"gateway,omitempty"`
	IPAddress           *string             `json:"IPAddress,omitempty"           yaml:"ip_address,omitempty"`
	IPPrefixLen         *int                `json:"IPPrefixLen,omitempty"         yaml:"ip_prefix_len,omitempty"`
	IPv6Gateway         *string             `json:"IPv6Gateway,omitempty"         yaml:"ipv6_gateway,omitempty"`
	GlobalIPv6Address   *string             `json:"GlobalIPv6Address,omitempty"   yaml:"global_ipv6_address,omitempty"`
	GlobalIPv6PrefixLen *int                `json:"GlobalIPv6PrefixLen,omitempty" yaml:"global_ipv6_prefix_len,omitempty"`
	MacAddress          *string             `json:"MacAddress,omitempty"          yaml:"mac_address,omitempty"`
}

// EndpointIPAMConfig holds statically requested addresses of an endpoint.
type EndpointIPAMConfig struct {
	IPv4Address  *string  `json:"IPv4Address,omitempty"  yaml:"ipv4_address,omitempty"`
	IPv6Address  *string  `json:"IPv6Address,omitempty"  yaml:"ipv6_address,omitempty"`
	LinkLocalIPs []string `json:"LinkLocalIPs,omitempty" yaml:"link_local_ips,omitempty"`
}

// Mount describes a mount of a container or of a task's container spec.
type Mount struct {
	Target        *string             `json:"Target,omitempty"        yaml:"target,omitempty"`
	Source        *string             `json:"Source,omitempty"        yaml:"source,omitempty"`
	Type          *string             `json:"Type,omitempty"          yaml:"type,omitempty"`
	ReadOnly      *bool               `json:"ReadOnly,omitempty"      yaml:"read_only,omitempty"`
	VolumeOptions *MountVolumeOptions `json:"VolumeOptions,omitempty" yaml:"volume_options,omitempty"`
	TmpfsOptions  *MountTmpfsOptions  `json:"TmpfsOptions,omitempty"  yaml:"tmpfs_options,omitempty"`
	BindOptions   *MountBindOptions   `json:"BindOptions,omitempty"   yaml:"bind_options,omitempty"`
}

// MountBindOptions configures bind mounts.
type MountBindOptions struct {
	Propagation *string `json:"Propagation,omitempty" yaml:"propagation,omitempty"`
}

// MountVolumeOptions configures volume mounts.
type MountVolumeOptions struct {
	NoCopy       *bool             `json:"NoCopy,omitempty"       yaml:"no_copy,omitempty"`
	Labels       map[string]string `json:"Labels,omitempty"       yaml:"labels,omitempty"`
	DriverConfig *Driver           `json:"DriverConfig,omitempty" yaml:"driver_config,omitempty"`
}

// MountTmpfsOptions configures tmpfs mounts.
type MountTmpfsOptions struct {
	SizeBytes *int64 `json:"SizeBytes,omitempty" yaml:"size_bytes,omitempty"`
	Mode      *int   `json:"Mode,omitempty"      yaml:"mode,omitempty"`
}

// Driver names a driver and its options. Used for volume drivers, log
// drivers and secret drivers alike.
type Driver struct {
	Name    *string           `json:"Name,omitempty"    yaml:"name,omitempty"`
	Options map[string]string `json:"Options,omitempty" yaml:"options,omitempty"`
}
