package domain

import "fmt"

// StatusAccepted is the only HTTP status the service answers a
// successful management request with.
const StatusAccepted = 202

// Outcome is the result of one dispatched request. Outcomes are reported
// and discarded; no history is retained.
type Outcome struct {
	// Accepted is true iff the service answered 202.
	Accepted bool

	// Status is the HTTP status code of the response, 0 when the request
	// never reached the service.
	Status int

	// Err is set when the request failed at the transport layer
	// (connection, DNS, TLS). Mutually exclusive with a Status.
	Err error
}

// Accept returns the outcome for an accepted request.
func Accept() Outcome {
	return Outcome{Accepted: true, Status: StatusAccepted}
}

// Reject returns the outcome for a response with a non-202 status.
func Reject(status int) Outcome {
	return Outcome{Status: status}
}

// Failed returns the outcome for a transport-level failure.
func Failed(err error) Outcome {
	return Outcome{Err: err}
}

// ClassifyStatus maps an HTTP status to an Outcome: 202 is Accepted,
// anything else Rejected with that status.
func ClassifyStatus(status int) Outcome {
	if status == StatusAccepted {
		return Accept()
	}
	return Reject(status)
}

// AsError converts the outcome to its taxonomy error: nil when
// accepted, ErrServiceRejected for a non-202 status, the transport
// error otherwise.
func (o Outcome) AsError() error {
	switch {
	case o.Err != nil:
		return o.Err
	case o.Accepted:
		return nil
	default:
		return ErrServiceRejected.WithDetails(fmt.Sprintf("status %d", o.Status))
	}
}

// String renders the outcome the way the command loop reports it.
func (o Outcome) String() string {
	switch {
	case o.Err != nil:
		return fmt.Sprintf("send failed: %v", o.Err)
	case o.Accepted:
		return "accepted"
	default:
		return fmt.Sprintf("rejected (status %d)", o.Status)
	}
}
