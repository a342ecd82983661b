// Package notifications accepts Git push events from the agent server side
// and republishes them to in-process subscribers and the persistent event log.
package notifications
