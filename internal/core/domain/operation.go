package domain

import "net/http"

// OperationKind discriminates the closed set of management operations.
type OperationKind int

const (
	// KindBroadcast sends a message to every connection on the hub.
	KindBroadcast OperationKind = iota

	// KindSendToUser sends a message to a single user.
	KindSendToUser

	// KindSendToGroup sends a message to a group.
	KindSendToGroup

	// KindAddToGroup adds a user to a group.
	KindAddToGroup

	// KindRemoveFromGroup removes a user from a group.
	KindRemoveFromGroup
)

// String returns the operation kind name.
func (k OperationKind) String() string {
	switch k {
	case KindBroadcast:
		return "broadcast"
	case KindSendToUser:
		return "send_to_user"
	case KindSendToGroup:
		return "send_to_group"
	case KindAddToGroup:
		return "add_to_group"
	case KindRemoveFromGroup:
		return "remove_from_group"
	default:
		return "unknown"
	}
}

// Operation is one management operation together with the parameters its
// variant needs. Use the constructors; a zero Operation is a Broadcast.
type Operation struct {
	Kind   OperationKind
	UserID string
	Group  string
}

// Broadcast targets every connection on the hub.
func Broadcast() Operation {
	return Operation{Kind: KindBroadcast}
}

// SendToUser targets a single user's connections.
func SendToUser(userID string) Operation {
	return Operation{Kind: KindSendToUser, UserID: userID}
}

// SendToGroup targets the members of a group.
func SendToGroup(group string) Operation {
	return Operation{Kind: KindSendToGroup, Group: group}
}

// AddToGroup adds a user to a group.
func AddToGroup(group, userID string) Operation {
	return Operation{Kind: KindAddToGroup, Group: group, UserID: userID}
}

// RemoveFromGroup removes a user from a group.
func RemoveFromGroup(group, userID string) Operation {
	return Operation{Kind: KindRemoveFromGroup, Group: group, UserID: userID}
}

// HasBody reports whether the operation carries a message payload.
// Group membership is fully expressed by method + path and carries none.
func (op Operation) HasBody() bool {
	switch op.Kind {
	case KindBroadcast, KindSendToUser, KindSendToGroup:
		return true
	default:
		return false
	}
}

// Route is a resolved resource path and HTTP method for one operation.
type Route struct {
	URL    string
	Method string
}

// ResolveRoute maps an operation to its resource URL and method on the
// given hub. Pure: identical inputs always yield the identical route.
//
// AddToGroup and RemoveFromGroup resolve to the same path on purpose;
// membership is idempotent PUT/DELETE against one resource.
func ResolveRoute(op Operation, endpoint HubEndpoint) Route {
	base := endpoint.BasePath()

	switch op.Kind {
	case KindSendToUser:
		return Route{URL: base + "/users/" + op.UserID, Method: http.MethodPost}
	case KindSendToGroup:
		return Route{URL: base + "/groups/" + op.Group, Method: http.MethodPost}
	case KindAddToGroup:
		return Route{URL: base + "/groups/" + op.Group + "/users/" + op.UserID, Method: http.MethodPut}
	case KindRemoveFromGroup:
		return Route{URL: base + "/groups/" + op.Group + "/users/" + op.UserID, Method: http.MethodDelete}
	default: // Broadcast
		return Route{URL: base, Method: http.MethodPost}
	}
}
