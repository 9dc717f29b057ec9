package component

import "github.com/milk9111/blobdrop/softbody"

// SoftBodyComponent holds the node ring, springs and settle state of a blob.
var SoftBodyComponent = NewComponent[softbody.Body]()

// PhysicsParamsComponent holds the integrator tuning shared by every body.
// It lives on the arena entity.
var PhysicsParamsComponent = NewComponent[softbody.Params]()
