package docker

// Network represents an entry of GET /networks.
type Network struct {
	Name       *string                     `json:"Name,omitempty"       yaml:"name,omitempty"`
	ID         *string                     `json:"Id,omitempty"         yaml:"id,omitempty"`
	Created    *string                     `json:"Created,omitempty"    yaml:"created,omitempty"`
	Scope      *string                     `json:"Scope,omitempty"      yaml:"scope,omitempty"`
	Driver     *string                     `json:"Driver,omitempty"     yaml:"driver,omitempty"`
	EnableIPv6 *bool                       `json:"EnableIPv6,omitempty" yaml:"enable_ipv6,omitempty"`
	Internal   *bool                       `json:"Internal,omitempty"   yaml:"internal,omitempty"`
	Attachable *bool                       `json:"Attachable,omitempty" yaml:"attachable,omitempty"`
	Ingress    *bool                       `json:"Ingress,omitempty"    yaml:"ingress,omitempty"`
	IPAM       *IPAM                       `json:"IPAM,omitempty"       yaml:"ipam,omitempty"`
	Containers map[string]NetworkContainer `json:"Containers,omitempty" yaml:"containers,omitempty"`
	Options    map[string]string           `json:"Options,omitempty"    yaml:"options,omitempty"`
	Labels     map[string]string           `json:"Labels,omitempty"     yaml:"labels,omitempty"`
}

// IPAM is the address management configuration of a network.
type IPAM struct {
	Driver  *string           `json:"Driver,omitempty"  yaml:"driver,omitempty"`
	Options map[string]string `json:"Options,omitempty" yaml:"options,omitempty"`
	Config  []IPAMConfig      `json:"Config,omitempty"  yaml:"config,omitempty"`
}

// IPAMConfig is one address pool of a network.
type IPAMConfig struct {
	Subnet     *string           `json:"Subnet,omitempty"     yaml:"subnet,omitempty"`
	IPRange    *string           `json:"IPRange,omitempty"    yaml:"ip_range,omitempty"`
	Gateway    *string           `json:"Gateway,omitempty"    yaml:"gateway,omitempty"`
	AuxAddress map[string]string `json:"AuxAddress,omitempty" yaml:"aux_address,omitempty"`
}

// NetworkContainer is a container endpoint as reported inside a network.
type NetworkContainer struct {
	Name        *string `json:"Name,omitempty"        yaml:"name,omitempty"`
	EndpointID  *string `json:"EndpointID,omitempty"  yaml:"endpoint_id,omitempty"`
	MacAddress  *string `json:"MacAddress,omitempty"  yaml:"mac_address,omitempty"`
	IPv4Address *string `json:"IPv4Address,omitempty" yaml:"ipv4_address,omitempty"`
	IPv6Address *string `json:"IPv6Address,omitempty" yaml:"ipv6_address,omitempty"`
}
