package constants

import "errors"

// CLI configuration errors.
var (
	ErrUnknownOutputFormat = errors.New("unknown output format, use table, json or yaml")
	ErrConfigDirUnwritable = errors.New("cannot create config directory")
	ErrConfigExists        = errors.New("config file already exists, use --force to overwrite")
)

// Secret command errors.
var (
	ErrSecretNameRequired   = errors.New("secret name is required")
	ErrSecretDataRequired   = errors.New("secret data is required, use --file or pipe it on stdin")
	ErrSecretDataConflict   = errors.New("--file and --data are mutually exclusive")
	ErrSecretVersionMissing = errors.New("daemon returned a secret without a version index")
	ErrInvalidLabel         = errors.New("invalid label, expected key=value")
	ErrNothingToUpdate      = errors.New("nothing to update, use --label or --remove-label")
)
