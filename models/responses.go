package models

// ValidationErrorResponse is the body returned for any 400 caused by
// field-level validation or a uniqueness violation. Errors preserves the
// order in which the violations were detected and always carries the full
// list, not just the first failure.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse is the body returned for authentication, authorization and
// lookup failures. A single consistent key is used for all of them.
type ErrorResponse struct {
	Error string `json:"error"`
}
