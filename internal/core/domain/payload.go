package domain

// DefaultTarget is the hub method invoked by every message this client sends.
const DefaultTarget = "SendMessage"

// PayloadMessage is the invocation body for send-type operations.
//
// The service relays it to clients as a hub method invocation: Target is
// the method name, Arguments its positional parameters.
type PayloadMessage struct {
	Target    string `json:"target"`
	Arguments []any  `json:"arguments"`
}

// DemoPayload returns the fixed payload this client sends on every
// broadcast/send: the sender identity plus a greeting. Arguments are not
// derived from user input.
func DemoPayload(sender string) PayloadMessage {
	return PayloadMessage{
		Target:    DefaultTarget,
		Arguments: []any{sender, "Hello from server"},
	}
}
