package config

import "errors"

var (
	ErrNoDatabaseDSN         = errors.New("no database DSN was provided")
	ErrNoHTTPAddress         = errors.New("no HTTP listen address was provided")
	ErrNoTokenSignKey        = errors.New("no token sign key was provided")
	ErrUnknownConflictPolicy = errors.New("unknown conflict policy")
	ErrNoObjectClasses       = errors.New("no object classes were registered")
	ErrUnnamedObjectClass    = errors.New("object class without a name")
	ErrDuplicateObjectClass  = errors.New("duplicate object class")
)
