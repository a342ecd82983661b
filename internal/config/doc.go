// Package config handles configuration loading for kas-gateway.
//
// # Configuration File
//
// The file is read from $KAS_CONFIG when set, otherwise from
// $XDG_CONFIG_HOME/kas/gateway.yaml (~/.config/kas/gateway.yaml).
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${KAS_JWT_SECRET}"
//
// Unset variables expand to the empty string.
//
// # Durations
//
// Tracker and registrar timings are Go duration strings ("5m", "90s"). Empty
// values take the package defaults. The tracker refresh period must exceed
// the 5s refresh overlap and stay below the entry TTL, and the registrar's
// dedupe window must be shorter than the TTL, so a skipped write can never
// let a live connection expire.
package config
