package provider

import "fmt"

// ProviderError reports a transport failure or a non-2xx response from a
// provider. Status is zero when the request never reached the provider.
type ProviderError struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ResponseShapeError reports a provider response missing expected fields,
// such as an empty choice list.
type ResponseShapeError struct {
	Provider string
	Reason   string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Provider, e.Reason)
}
