package workflow

// ValidationError reports bad or missing required input. Terminal;
// handlers map it to a 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + e.Reason
}

// NotificationError reports that at least one of the two notification
// sends was not accepted by the transport. Terminal; handlers map it to a
// 500. Datastore failures are not wrapped: the airtable.APIError passes
// through so callers can inspect the remote status code.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return "notification failed: " + e.Err.Error()
}

func (e *NotificationError) Unwrap() error { return e.Err }
