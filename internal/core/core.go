package core

import (
	"github.com/Masterminds/semver/v3"
)

// VersionInfo implemented by every servant selected through features.
type VersionInfo interface {
	Name() string
	Version() *semver.Version
}
