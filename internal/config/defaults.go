// Package config - defaults.go centralizes magic numbers and default values.
//
// DESIGN: All default values that appear in multiple places should be defined
// here. This makes configuration more maintainable and auditable.
package config

import "github.com/lygovtw/ly-gateway/internal/lyapi"

// =============================================================================
// UPSTREAM API
// =============================================================================

// DefaultBaseURL re-exports the canonical definition in lyapi.
const DefaultBaseURL = lyapi.DefaultBaseURL

// DefaultTimeoutSeconds is the fixed per-call upstream timeout.
const DefaultTimeoutSeconds = 30

// =============================================================================
// PROCESS
// =============================================================================

// DefaultConfigFile is the YAML config file looked up in the working
// directory when LY_GATEWAY_CONFIG is unset.
const DefaultConfigFile = "ly-gateway.yaml"

// DefaultLogLevel is the zerolog level used when none is configured.
const DefaultLogLevel = "info"
