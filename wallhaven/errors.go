package wallhaven

import "fmt"

// AuthenticationRequiredError is returned when an operation needs an API key
// and none is configured. No request reaches the network.
type AuthenticationRequiredError struct {
	Operation string
}

func (e *AuthenticationRequiredError) Error() string {
	return fmt.Sprintf("wallhaven: %s requires an API key and none is configured", e.Operation)
}

// UnauthorizedError maps HTTP 401: the API rejected the configured key or
// refused access to the resource.
type UnauthorizedError struct {
	Operation string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("wallhaven: %s: the API rejected the credentials", e.Operation)
}

// NotFoundError maps HTTP 404 and carries the requested identifier.
type NotFoundError struct {
	Operation string
	ID        string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("wallhaven: %s: %q not found", e.Operation, e.ID)
	}
	return fmt.Sprintf("wallhaven: %s: not found", e.Operation)
}

// RateLimitedError maps HTTP 429. The API allows 45 requests per minute;
// the client never waits or retries on its own.
type RateLimitedError struct {
	Operation string
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("wallhaven: %s: request limit exceeded", e.Operation)
}

// TransportError covers network faults and any status the taxonomy does not
// name. Exactly one of Err and Status is set.
type TransportError struct {
	Operation string
	Status    int
	Err       error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wallhaven: %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("wallhaven: %s: unexpected status %d", e.Operation, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError means a response body could not be decoded or was
// missing a required field. No partial entity is ever returned alongside it.
type MalformedResponseError struct {
	Entity string
	Field  string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("wallhaven: malformed %s response: missing or invalid %q", e.Entity, e.Field)
	}
	return fmt.Sprintf("wallhaven: malformed %s response: %v", e.Entity, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// DownloadError is a failure while streaming a wallpaper's bytes to disk.
type DownloadError struct {
	ID     string
	Status int
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wallhaven: downloading wallpaper %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("wallhaven: downloading wallpaper %q: unexpected status %d", e.ID, e.Status)
}

func (e *DownloadError) Unwrap() error { return e.Err }
