package rt

import "fmt"

// StatusError is a typed non-2xx HTTP result. It surfaces the status code and
// raw body explicitly so callers can branch on status ranges and re-parse the
// payload, instead of introspecting transport errors.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// MembersOnlyError marks an episode gated behind a paid membership tier,
// confirmed by the backend's explicit access flag.
type MembersOnlyError struct {
	DisplayID string
}

func (e *MembersOnlyError) Error() string {
	return fmt.Sprintf("%s is only available for members", e.DisplayID)
}

// PageMismatchError reports a pagination response whose declared page number
// disagrees with the requested one. There is no recovery path: the walk's
// coverage guarantee is void, so resolution aborts.
type PageMismatchError struct {
	Requested int
	Returned  int
}

func (e *PageMismatchError) Error() string {
	return fmt.Sprintf("episode listing returned page %d for requested page %d", e.Returned, e.Requested)
}
