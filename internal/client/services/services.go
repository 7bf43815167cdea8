// Package services contains typed wrappers over the REST client, one per
// backend resource: auth, notifiers, notifications, education records,
// account management and telemetry. Page views consume these instead of
// talking to the HTTP layer directly.
package services

import "context"

// HTTPClient is the verb surface the services need. *api.Client satisfies
// it; tests substitute a fake.
type HTTPClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}
