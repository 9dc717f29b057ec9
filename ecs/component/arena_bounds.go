package component

import "github.com/milk9111/blobdrop/common"

// ArenaBounds stores the play field rectangle.
type ArenaBounds struct {
	common.Bounds
}

var ArenaBoundsComponent = NewComponent[ArenaBounds]()
