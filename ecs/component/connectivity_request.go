package component

// ConnectivityRequest is a marker placed on the arena entity to ask for a
// connectivity pass at the end of the current tick.
type ConnectivityRequest struct {
	Reason string
}

var ConnectivityRequestComponent = NewComponent[ConnectivityRequest]()
