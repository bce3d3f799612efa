// Package service runs the posture service: a single event loop that owns
// all posture state and serialises every input through it.
//
// Sensor readings, rotation changes, hardware death notices, power changes,
// manual posture commands and timer expiries are all events. Each event is
// handled to completion before the next one is taken, so the lock policy
// resolver, the rotation gate, the composition driver and the hardware link
// manager never see concurrent calls.
//
// Example usage:
//
//	links := hal.NewManager(locator, hal.DefaultConfig())
//	config := service.DefaultConfig()
//	config.Links = links
//	config.Settings = settings.NewMemoryStore(settings.Default())
//	config.Platform = plat
//
//	svc, err := service.New(config)
//	svc.Start(ctx)
//	defer svc.Stop()
//
//	svc.Post(service.PostureEvent{Code: 3, RotationCode: 0})
//
// Post is fire-and-forget and is what sensor callbacks use. Dispatch waits
// for the event to be handled and returns the resulting Snapshot.
package service
