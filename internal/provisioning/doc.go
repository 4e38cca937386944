// Package provisioning provides the staged setup sequencer.
//
// A setup run is an ordered list of [Stage] values executed by
// [RunStages]. Stages share a [Context] carrying configuration,
// credentials, the remote executor for the target computer, and a
// [State] that earlier stages populate for later ones. A stage failure
// does not stop the run: the remaining stages still execute, and the
// final [Report] records per-stage outcomes.
//
// The concrete stages live in the stages/ subpackage.
package provisioning
