package docker

// TaskState is the lifecycle state of a swarm task.
type TaskState string

// Task states reported by the daemon.
const (
	TaskStateNew       TaskState = "new"
	TaskStatePending   TaskState = "pending"
	TaskStateAssigned  TaskState = "assigned"
	TaskStateAccepted  TaskState = "accepted"
	TaskStatePreparing TaskState = "preparing"
	TaskStateReady     TaskState = "ready"
	TaskStateStarting  TaskState = "starting"
	TaskStateRunning   TaskState = "running"
	TaskStateComplete  TaskState = "complete"
	TaskStateShutdown  TaskState = "shutdown"
	TaskStateFailed    TaskState = "failed"
	TaskStateRejected  TaskState = "rejected"
)

// Task represents an entry of GET /tasks.
type Task struct {
	ID           *string           `json:"ID,omitempty"           yaml:"id,omitempty"`
	Version      *ObjectVersion    `json:"Version,omitempty"      yaml:"version,omitempty"`
	CreatedAt    *string           `json:"CreatedAt,omitempty"    yaml:"created_at,omitempty"`
	UpdatedAt    *string           `json:"UpdatedAt,omitempty"    yaml:"updated_at,omitempty"`
	Name         *string           `json:"Name,omitempty"         yaml:"name,omitempty"`
	Labels       map[string]string `json:"Labels,omitempty"       yaml:"labels,omitempty"`
	Spec         *TaskSpec         `json:"Spec,omitempty"         yaml:"spec,omitempty"`
	ServiceID    *string           `json:"ServiceID,omitempty"    yaml:"service_id,omitempty"`
	Slot         *int              `json:"Slot,omitempty"         yaml:"slot,omitempty"`
	NodeID       *string           `json:"NodeID,omitempty"       yaml:"node_id,omitempty"`
	Status       *TaskStatus       `json:"Status,omitempty"       yaml:"status,omitempty"`
	DesiredState *TaskState        `json:"DesiredState,omitempty" yaml:"desired_state,omitempty"`
}

// TaskSpec is the desired configuration of a task.
type TaskSpec struct {
	ContainerSpec *ContainerSpec      `json:"ContainerSpec,omitempty" yaml:"container_spec,omitempty"`
	Resources     *TaskResources      `json:"Resources,omitempty"     yaml:"resources,omitempty"`
	RestartPolicy *RestartPolicy      `json:"RestartPolicy,omitempty" yaml:"restart_policy,omitempty"`
	Placement     *Placement          `json:"Placement,omitempty"     yaml:"placement,omitempty"`
	ForceUpdate   *int                `json:"ForceUpdate,omitempty"   yaml:"force_update,omitempty"`
	Networks      []NetworkAttachment `json:"Networks,omitempty"      yaml:"networks,omitempty"`
	LogDriver     *Driver             `json:"LogDriver,omitempty"     yaml:"log_driver,omitempty"`
}

// ContainerSpec is the container part of a task spec.
type ContainerSpec struct {
	Image           *string           `json:"Image,omitempty"           yaml:"image,omitempty"`
	Labels          map[string]string `json:"Labels,omitempty"          yaml:"labels,omitempty"`
	Command         []string          `json:"Command,omitempty"         yaml:"command,omitempty"`
	Args            []string          `json:"Args,omitempty"            yaml:"args,omitempty"`
	Hostname        *string           `json:"Hostname,omitempty"        yaml:"hostname,omitempty"`
	Env             []string          `json:"Env,omitempty"             yaml:"env,omitempty"`
	Dir             *string           `json:"Dir,omitempty"             yaml:"dir,omitempty"`
	User            *string           `json:"User,omitempty"            yaml:"user,omitempty"`
	Groups          []string          `json:"Groups,omitempty"          yaml:"groups,omitempty"`
	TTY             *bool             `json:"TTY,omitempty"             yaml:"tty,omitempty"`
	OpenStdin       *bool             `json:"OpenStdin,omitempty"       yaml:"open_stdin,omitempty"`
	ReadOnly        *bool             `json:"ReadOnly,omitempty"        yaml:"read_only,omitempty"`
	Mounts          []Mount           `json:"Mounts,omitempty"          yaml:"mounts,omitempty"`
	StopGracePeriod *int64            `json:"StopGracePeriod,omitempty" yaml:"stop_grace_period,omitempty"`
	HealthCheck     *HealthConfig     `json:"HealthCheck,omitempty"     yaml:"health_check,omitempty"`
	Hosts           []string          `json:"Hosts,omitempty"           yaml:"hosts,omitempty"`
	DNSConfig       *DNSConfig        `json:"DNSConfig,omitempty"       yaml:"dns_config,omitempty"`
	Secrets         []SecretReference `json:"Secrets,omitempty"         yaml:"secrets,omitempty"`
}

// HealthConfig describes a container health check. Durations are nanoseconds.
type HealthConfig struct {
	Test        []string `json:"Test,omitempty"        yaml:"test,omitempty"`
	Interval    *int64   `json:"Interval,omitempty"    yaml:"interval,omitempty"`
	Timeout     *int64   `json:"Timeout,omitempty"     yaml:"timeout,omitempty"`
	Retries     *int     `json:"Retries,omitempty"     yaml:"retries,omitempty"`
	StartPeriod *int64   `json:"StartPeriod,omitempty" yaml:"start_period,omitempty"`
}

// DNSConfig overrides resolver settings of a container.
type DNSConfig struct {
	Nameservers []string `json:"Nameservers,omitempty" yaml:"nameservers,omitempty"`
	Search      []string `json:"Search,omitempty"      yaml:"search,omitempty"`
	Options     []string `json:"Options,omitempty"     yaml:"options,omitempty"`
}

// SecretReference exposes a secret to a task's container.
type SecretReference struct {
	File       *SecretReferenceFile `json:"File,omitempty"       yaml:"file,omitempty"`
	SecretID   *string              `json:"SecretID,omitempty"   yaml:"secret_id,omitempty"`
	SecretName *string              `json:"SecretName,omitempty" yaml:"secret_name,omitempty"`
}

// SecretReferenceFile is the file a referenced secret is mounted as.
type SecretReferenceFile struct {
	Name *string `json:"Name,omitempty" yaml:"name,omitempty"`
	UID  *string `json:"UID,omitempty"  yaml:"uid,omitempty"`
	GID  *string `json:"GID,omitempty"  yaml:"gid,omitempty"`
	Mode *uint32 `json:"Mode,omitempty" yaml:"mode,omitempty"`
}

// TaskResources holds resource limits and reservations.
type TaskResources struct {
	Limits       *Resources `json:"Limits,omitempty"       yaml:"limits,omitempty"`
	Reservations *Resources `json:"Reservations,omitempty" yaml:"reservations,omitempty"`
}

// Resources is an amount of CPU and memory.
type Resources struct {
	NanoCPUs    *int64 `json:"NanoCPUs,omitempty"    yaml:"nano_cpus,omitempty"`
	MemoryBytes *int64 `json:"MemoryBytes,omitempty" yaml:"memory_bytes,omitempty"`
}

// RestartPolicy controls task restarts. Delay and Window are nanoseconds.
type RestartPolicy struct {
	Condition   *string `json:"Condition,omitempty"   yaml:"condition,omitempty"`
	Delay       *int64  `json:"Delay,omitempty"       yaml:"delay,omitempty"`
	MaxAttempts *int64  `json:"MaxAttempts,omitempty" yaml:"max_attempts,omitempty"`
	Window      *int64  `json:"Window,omitempty"      yaml:"window,omitempty"`
}

// Placement constrains the nodes a task can be scheduled on.
type Placement struct {
	Constraints []string `json:"Constraints,omitempty" yaml:"constraints,omitempty"`
}

// NetworkAttachment attaches a task to a network.
type NetworkAttachment struct {
	Target  *string  `json:"Target,omitempty"  yaml:"target,omitempty"`
	Aliases []string `json:"Aliases,omitempty" yaml:"aliases,omitempty"`
}

// TaskStatus is the observed state of a task.
type TaskStatus struct {
	Timestamp       *string              `json:"Timestamp,omitempty"       yaml:"timestamp,omitempty"`
	State           *TaskState           `json:"State,omitempty"           yaml:"state,omitempty"`
	Message         *string              `json:"Message,omitempty"         yaml:"message,omitempty"`
	Err             *string              `json:"Err,omitempty"             yaml:"err,omitempty"`
	ContainerStatus *TaskContainerStatus `json:"ContainerStatus,omitempty" yaml:"container_status,omitempty"`
}

// TaskContainerStatus is the status of the container backing a task.
type TaskContainerStatus struct {
	ContainerID *string `json:"ContainerID,omitempty" yaml:"container_id,omitempty"`
	PID         *int    `json:"PID,omitempty"         yaml:"pid,omitempty"`
	ExitCode    *int    `json:"ExitCode,omitempty"    yaml:"exit_code,omitempty"`
}
