// Package core contains the app-wide contracts and state orchestration.
//
// Allowed here:
// - the Command variant set exchanged between regions
// - the Region contract and the dispatcher that routes keys and commands
// - key bindings, shared styles, status and footer bars
//
// Not allowed here:
// - concrete region implementations (see the regions package)
// - score, notation or codec logic
package core
