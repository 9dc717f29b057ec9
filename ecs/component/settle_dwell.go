package component

// SettleDwell counts consecutive ticks a body has reported settled. It resets
// to zero whenever the body moves again.
type SettleDwell struct {
	Ticks int
}

var SettleDwellComponent = NewComponent[SettleDwell]()
