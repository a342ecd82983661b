// ABOUTME: Validation for Notifications messages on top of the generated bindings
// ABOUTME: A push event must name the project it belongs to

package rpc

import "errors"

// ErrMissingProject is returned for a push event without a project.
var ErrMissingProject = errors.New("project is required")

// Validate checks the request carries a project.
func (x *GitPushEventRequest) Validate() error {
	if x.GetProject() == nil {
		return ErrMissingProject
	}
	return nil
}

// Validate always succeeds; the response has no fields.
func (x *GitPushEventResponse) Validate() error {
	return nil
}
