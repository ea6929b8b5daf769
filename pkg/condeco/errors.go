package condeco

import "fmt"

// APIError is a non-2xx HTTP response from the Condeco API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("condeco: API returned status %d: %s", e.StatusCode, e.Body)
}

// IsAuthError reports whether the response indicates the bearer token
// or session token was rejected.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// CallError is a 2xx response whose CallResponse envelope reports a
// failure. The vendor uses response code 100 for success and carries a
// human-readable message for everything else.
type CallError struct {
	Code    int
	Message string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("condeco: call failed with response code %d: %s", e.Code, e.Message)
}
