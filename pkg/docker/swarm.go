package docker

// Swarm is the body of GET /swarm.
type Swarm struct {
	ID                     *string        `json:"ID,omitempty"               yaml:"id,omitempty"`
	Version                *ObjectVersion `json:"Version,omitempty"          yaml:"version,omitempty"`
	CreatedAt              *string        `json:"CreatedAt,omitempty"        yaml:"created_at,omitempty"`
	UpdatedAt              *string        `json:"UpdatedAt,omitempty"        yaml:"updated_at,omitempty"`
	Spec                   *SwarmSpec     `json:"Spec,omitempty"             yaml:"spec,omitempty"`
	RootRotationInProgress *bool          `json:"RootRotationInProgress,omitempty" yaml:"root_rotation_in_progress,omitempty"`
	JoinTokens             *JoinTokens    `json:"JoinTokens,omitempty"       yaml:"join_tokens,omitempty"`
}

// JoinTokens are the tokens nodes present to join the swarm.
type JoinTokens struct {
	Worker  *string `json:"Worker,omitempty"  yaml:"worker,omitempty"`
	Manager *string `json:"Manager,omitempty" yaml:"manager,omitempty"`
}

// SwarmSpec is the user-modifiable configuration of a swarm.
type SwarmSpec struct {
	Name             *string              `json:"Name,omitempty"             yaml:"name,omitempty"`
	Labels           map[string]string    `json:"Labels,omitempty"           yaml:"labels,omitempty"`
	Orchestration    *OrchestrationConfig `json:"Orchestration,omitempty"    yaml:"orchestration,omitempty"`
	Raft             *RaftConfig          `json:"Raft,omitempty"             yaml:"raft,omitempty"`
	Dispatcher       *DispatcherConfig    `json:"Dispatcher,omitempty"       yaml:"dispatcher,omitempty"`
	CAConfig         *CAConfig            `json:"CAConfig,omitempty"         yaml:"ca_config,omitempty"`
	EncryptionConfig *EncryptionConfig    `json:"EncryptionConfig,omitempty" yaml:"encryption_config,omitempty"`
	TaskDefaults     *TaskDefaults        `json:"TaskDefaults,omitempty"     yaml:"task_defaults,omitempty"`
}

// OrchestrationConfig configures task history.
type OrchestrationConfig struct {
	TaskHistoryRetentionLimit *int64 `json:"TaskHistoryRetentionLimit,omitempty" yaml:"task_history_retention_limit,omitempty"`
}

// RaftConfig configures the raft consensus of managers.
type RaftConfig struct {
	SnapshotInterval           *uint64 `json:"SnapshotInterval,omitempty"           yaml:"snapshot_interval,omitempty"`
	KeepOldSnapshots           *uint64 `json:"KeepOldSnapshots,omitempty"           yaml:"keep_old_snapshots,omitempty"`
	LogEntriesForSlowFollowers *uint64 `json:"LogEntriesForSlowFollowers,omitempty" yaml:"log_entries_for_slow_followers,omitempty"`
	ElectionTick               *int    `json:"ElectionTick,omitempty"               yaml:"election_tick,omitempty"`
	HeartbeatTick              *int    `json:"HeartbeatTick,omitempty"              yaml:"heartbeat_tick,omitempty"`
}

// DispatcherConfig configures agent heartbeats. HeartbeatPeriod is nanoseconds.
type DispatcherConfig struct {
	HeartbeatPeriod *int64 `json:"HeartbeatPeriod,omitempty" yaml:"heartbeat_period,omitempty"`
}

// CAConfig configures the swarm certificate authority. NodeCertExpiry is nanoseconds.
type CAConfig struct {
	NodeCertExpiry *int64       `json:"NodeCertExpiry,omitempty" yaml:"node_cert_expiry,omitempty"`
	ExternalCAs    []ExternalCA `json:"ExternalCAs,omitempty"    yaml:"external_cas,omitempty"`
}

// ExternalCA is a certificate authority outside the swarm.
type ExternalCA struct {
	Protocol *string           `json:"Protocol,omitempty" yaml:"protocol,omitempty"`
	URL      *string           `json:"URL,omitempty"      yaml:"url,omitempty"`
	Options  map[string]string `json:"Options,omitempty"  yaml:"options,omitempty"`
}

// EncryptionConfig configures manager autolock.
type EncryptionConfig struct {
	AutoLockManagers *bool `json:"AutoLockManagers,omitempty" yaml:"auto_lock_managers,omitempty"`
}

// TaskDefaults are applied to tasks that do not override them.
type TaskDefaults struct {
	LogDriver *Driver `json:"LogDriver,omitempty" yaml:"log_driver,omitempty"`
}
