package component

// SpawnRequest is a marker on the arena entity asking the spawn system for a
// new active body. It stays in place until a spawn succeeds.
type SpawnRequest struct{}

var SpawnRequestComponent = NewComponent[SpawnRequest]()
