package shopify

import "fmt"

// ConfigError indicates missing or malformed deployment settings (store
// domain, access token). It is always surfaced to the caller and never
// absorbed by the version-fallback loop.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("shopify configuration error: %s", e.Msg)
}

// TransportError indicates the endpoint could not be spoken to as a GraphQL
// API: a network-level failure or a non-JSON response (typically an HTML
// error page from a bad domain, version, or token). The fetch path treats it
// as a signal to try the next API version.
type TransportError struct {
	Version string
	Hint    string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shopify transport error (API %s): %v", e.Version, e.Err)
	}
	return fmt.Sprintf("shopify transport error (API %s): %s", e.Version, e.Hint)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError carries a remote-reported failure: a non-2xx status or a
// GraphQL/business error list. Triggers version fallback at fetch time;
// terminal at checkout time.
type APIError struct {
	Version string
	Msg     string
}

func (e *APIError) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("shopify API error (API %s): %s", e.Version, e.Msg)
	}
	return fmt.Sprintf("shopify API error: %s", e.Msg)
}

// ValidationError indicates caller-supplied input was malformed, e.g. an
// empty line-item list at checkout. Raised before any network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Msg)
}
