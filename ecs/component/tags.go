package component

// ArenaTag marks the entity that owns the arena singletons.
type ArenaTag struct{}

var ArenaTagComponent = NewComponent[ArenaTag]()

// ActiveTag marks the falling body that receives player input.
type ActiveTag struct{}

var ActiveTagComponent = NewComponent[ActiveTag]()

// ClearMark flags a body matched by connectivity analysis. Marked bodies are
// destroyed together once analysis has finished.
type ClearMark struct{}

var ClearMarkComponent = NewComponent[ClearMark]()
