// Package hal manages the links to the vendor hardware services that drive
// the dual-screen panels.
//
// Two links are maintained: the display topology service, which switches the
// panel composition, and the touch/pen service, which must be told the same
// composition and the current hinge angle. The touch service exists in two
// incompatible generations; the Manager probes the newer one first and
// remembers which generation answered.
//
// Every connected link registers a death watch. When the remote service goes
// away the link drops to StateDisconnected and the registered OnDeath callback
// fires, so the owner can call Reconnect and re-apply its state. Hardware call
// failures are returned as *CallError values and never panic through.
package hal
