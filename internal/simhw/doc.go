// Package simhw simulates the display topology and touch pen services and
// the platform collaborators of the posture service. The daemon uses it when
// no device is attached; tests and the scenario runner use it to inject
// service deaths and inspect the calls the service made.
package simhw
