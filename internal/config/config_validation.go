// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// Conflict policy names accepted by SYNC_CONFLICT_POLICY.
const (
	PolicyHighestVersionWins = "highest-version-wins"
	PolicyServerWins         = "server-wins"
)

const defaultDownloadBatchLimit = 500

// validate checks the merged configuration for completeness, fills defaults
// for the optional engine knobs, and returns a joined error listing every
// problem found.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.Server.HTTPAddress == "" {
		errs = append(errs, ErrNoHTTPAddress)
	}
	if c.Auth.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}

	switch c.Sync.ConflictPolicy {
	case "":
		c.Sync.ConflictPolicy = PolicyHighestVersionWins
	case PolicyHighestVersionWins, PolicyServerWins:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownConflictPolicy, c.Sync.ConflictPolicy))
	}

	if c.Sync.DownloadBatchLimit == 0 {
		c.Sync.DownloadBatchLimit = defaultDownloadBatchLimit
	}

	seen := make(map[string]struct{}, len(c.Sync.Classes))
	for _, class := range c.Sync.Classes {
		if class.Name == "" {
			errs = append(errs, ErrUnnamedObjectClass)
			continue
		}
		if _, dup := seen[class.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateObjectClass, class.Name))
		}
		seen[class.Name] = struct{}{}
	}
	if len(c.Sync.Classes) == 0 {
		errs = append(errs, ErrNoObjectClasses)
	}

	return errors.Join(errs...)
}
