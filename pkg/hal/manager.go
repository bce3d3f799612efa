package hal

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Manager defaults.
const (
	// DefaultConnectTimeout bounds a single service lookup.
	DefaultConnectTimeout = 2 * time.Second

	// DefaultConnectInterval is the minimum spacing of connect attempts
	// made through TryConnect.
	DefaultConnectInterval = 1 * time.Second

	// DefaultConnectBurst is the number of TryConnect attempts allowed
	// back to back before the interval applies.
	DefaultConnectBurst = 2
)

// Config configures a Manager.
type Config struct {
	// ConnectTimeout bounds each service lookup.
	ConnectTimeout time.Duration

	// ConnectInterval and ConnectBurst rate limit TryConnect attempts.
	// EnsureConnected and Reconnect are never limited.
	ConnectInterval time.Duration
	ConnectBurst    int

	// Backoff configures the retry delay handed out by NextRetryDelay.
	Backoff BackoffConfig

	// Logger receives link lifecycle messages. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the default manager configuration.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:  DefaultConnectTimeout,
		ConnectInterval: DefaultConnectInterval,
		ConnectBurst:    DefaultConnectBurst,
		Backoff: BackoffConfig{
			Initial:    InitialBackoff,
			Max:        MaxBackoff,
			Multiplier: BackoffMultiplier,
			Jitter:     JitterFactor,
		},
	}
}

// Manager owns the display and touch links.
//
// Calls are expected from a single owner goroutine; death callbacks may
// arrive from any goroutine and are serialised by the internal mutex.
type Manager struct {
	mu sync.Mutex

	locator Locator
	config  Config
	logger  *slog.Logger
	limiter *rate.Limiter
	backoff *Backoff

	display DisplayTopology
	touch   TouchLink

	states      map[LinkID]State
	generations map[LinkID]uint64

	// preferredTouch is the generation that answered last; it is probed first.
	preferredTouch TouchVersion

	onDeath       func(link LinkID)
	onStateChange func(link LinkID, oldState, newState State)
}

// NewManager creates a link manager. No connection is attempted until
// EnsureConnected, TryConnect or Reconnect is called.
func NewManager(locator Locator, config Config) *Manager {
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = DefaultConnectTimeout
	}
	if config.ConnectInterval <= 0 {
		config.ConnectInterval = DefaultConnectInterval
	}
	if config.ConnectBurst <= 0 {
		config.ConnectBurst = DefaultConnectBurst
	}

	return &Manager{
		locator:     locator,
		config:      config,
		logger:      config.Logger,
		limiter:     rate.NewLimiter(rate.Every(config.ConnectInterval), config.ConnectBurst),
		backoff:     NewBackoff(config.Backoff),
		states:      map[LinkID]State{LinkDisplay: StateDisconnected, LinkTouch: StateDisconnected},
		generations: make(map[LinkID]uint64),
	}
}

// OnDeath sets the callback invoked when a connected link's remote service dies.
// The callback runs on the goroutine that delivered the death notice.
func (m *Manager) OnDeath(fn func(link LinkID)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onDeath = fn
}

// OnStateChange sets the callback invoked on every link state transition.
func (m *Manager) OnStateChange(fn func(link LinkID, oldState, newState State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onStateChange = fn
}

// State returns the state of a link.
func (m *Manager) State(link LinkID) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[link]
}

// Connected returns true if both links are connected.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allConnectedLocked()
}

// TouchVersion returns the generation of the connected touch link, or TouchNone.
func (m *Manager) TouchVersion() TouchVersion {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.touch == nil {
		return TouchNone
	}
	return m.touch.Version()
}

// EnsureConnected connects any missing link. It is a no-op when both links
// are up. Failures are logged, not returned.
func (m *Manager) EnsureConnected(ctx context.Context) bool {
	if m.Connected() {
		return true
	}
	return m.connectMissing(ctx)
}

// TryConnect is EnsureConnected for high-rate callers such as hinge
// updates. Attempts are rate limited; a skipped attempt returns false
// without touching the locator.
func (m *Manager) TryConnect(ctx context.Context) bool {
	if m.Connected() {
		return true
	}
	if !m.limiter.Allow() {
		m.debugLog("hal: connect attempt skipped", "reason", ErrRateLimited)
		return false
	}
	return m.connectMissing(ctx)
}

// Reconnect drops both handles and looks the services up again. It bypasses
// the attempt limiter. On success the retry backoff is reset.
func (m *Manager) Reconnect(ctx context.Context) bool {
	for _, link := range Links() {
		m.drop(link)
	}
	ok := m.connectMissing(ctx)
	if ok {
		m.backoff.Reset()
	}
	return ok
}

// NextRetryDelay returns the delay before the next reconnect retry and
// advances the backoff.
func (m *Manager) NextRetryDelay() time.Duration {
	return m.backoff.Next()
}

// Release drops both links and their death watches.
func (m *Manager) Release() {
	for _, link := range Links() {
		m.drop(link)
	}
}

// SetComposition switches the panel composition on the display service.
func (m *Manager) SetComposition(id int32) error {
	m.mu.Lock()
	d := m.display
	m.mu.Unlock()

	if d == nil {
		return &CallError{Link: LinkDisplay, Call: "SetComposition", Err: ErrHardwareUnavailable}
	}
	return guard(LinkDisplay, "SetComposition", func() error { return d.SetComposition(id) })
}

// SetTouchState tells the touch service which composition is active.
func (m *Manager) SetTouchState(id int32) error {
	m.mu.Lock()
	t := m.touch
	m.mu.Unlock()

	if t == nil {
		return &CallError{Link: LinkTouch, Call: "SetDisplayState", Err: ErrHardwareUnavailable}
	}
	return t.SetDisplayState(id)
}

// SetHingeAngle forwards the hinge angle to the touch service.
func (m *Manager) SetHingeAngle(angle int32) error {
	m.mu.Lock()
	t := m.touch
	m.mu.Unlock()

	if t == nil {
		return &CallError{Link: LinkTouch, Call: "HingeAngle", Err: ErrHardwareUnavailable}
	}
	return t.HingeAngle(angle)
}

func (m *Manager) connectMissing(ctx context.Context) bool {
	if m.State(LinkDisplay) != StateConnected {
		m.connectDisplay(ctx)
	}
	if m.State(LinkTouch) != StateConnected {
		m.connectTouch(ctx)
	}
	return m.Connected()
}

func (m *Manager) connectDisplay(ctx context.Context) {
	m.setState(LinkDisplay, StateConnecting)

	lookupCtx, cancel := context.WithTimeout(ctx, m.config.ConnectTimeout)
	defer cancel()

	d, err := m.locator.DisplayTopology(lookupCtx)
	if err == nil && d == nil {
		err = ErrServiceNotFound
	}
	if err == nil {
		err = m.watch(LinkDisplay, d)
	}
	if err != nil {
		m.logWarn("hal: display topology unavailable", "error", err)
		m.setState(LinkDisplay, StateDisconnected)
		return
	}

	m.mu.Lock()
	m.display = d
	m.mu.Unlock()
	m.setState(LinkDisplay, StateConnected)
	m.debugLog("hal: display topology connected", "descriptor", d.Descriptor().String())
}

func (m *Manager) connectTouch(ctx context.Context) {
	m.setState(LinkTouch, StateConnecting)

	var lastErr error
	for _, v := range m.touchProbeOrder() {
		lookupCtx, cancel := context.WithTimeout(ctx, m.config.ConnectTimeout)
		pen, err := m.locator.TouchPen(lookupCtx, v.Descriptor())
		cancel()
		if err == nil && pen == nil {
			err = ErrServiceNotFound
		}
		if err != nil {
			m.debugLog("hal: touch probe failed", "version", v.String(), "error", err)
			lastErr = err
			continue
		}

		link, ok := newTouchLink(v, pen)
		if !ok {
			m.debugLog("hal: touch probe returned wrong generation",
				"version", v.String(), "descriptor", pen.Descriptor().String())
			lastErr = ErrServiceNotFound
			continue
		}
		if err := m.watch(LinkTouch, pen); err != nil {
			lastErr = err
			continue
		}

		m.mu.Lock()
		m.touch = link
		m.preferredTouch = v
		m.mu.Unlock()
		m.setState(LinkTouch, StateConnected)
		m.debugLog("hal: touch connected", "version", v.String())
		return
	}

	m.logWarn("hal: touch service unavailable", "error", lastErr)
	m.setState(LinkTouch, StateDisconnected)
}

func (m *Manager) touchProbeOrder() []TouchVersion {
	m.mu.Lock()
	preferred := m.preferredTouch
	m.mu.Unlock()

	switch preferred {
	case TouchV1:
		return []TouchVersion{TouchV1, TouchV2}
	default:
		return []TouchVersion{TouchV2, TouchV1}
	}
}

// watch registers a death watch tagged with a fresh generation, so a late
// notice from a replaced handle is ignored.
func (m *Manager) watch(link LinkID, b Binder) error {
	m.mu.Lock()
	m.generations[link]++
	gen := m.generations[link]
	m.mu.Unlock()

	if err := b.LinkToDeath(func() { m.handleDeath(link, gen) }); err != nil {
		return &CallError{Link: link, Call: "LinkToDeath", Err: err}
	}
	return nil
}

func (m *Manager) handleDeath(link LinkID, gen uint64) {
	m.mu.Lock()
	if m.generations[link] != gen || m.states[link] != StateConnected {
		m.mu.Unlock()
		return
	}
	m.generations[link]++
	m.clearHandleLocked(link)
	m.states[link] = StateDisconnected
	onDeath := m.onDeath
	onStateChange := m.onStateChange
	m.mu.Unlock()

	m.logWarn("hal: remote service died", "link", link.String())

	if onStateChange != nil {
		onStateChange(link, StateConnected, StateDisconnected)
	}
	if onDeath != nil {
		onDeath(link)
	}
}

// drop unlinks and forgets the handle for link.
func (m *Manager) drop(link LinkID) {
	m.mu.Lock()
	var b Binder
	switch link {
	case LinkDisplay:
		if m.display != nil {
			b = m.display
		}
	case LinkTouch:
		if m.touch != nil {
			b = m.touch.binder()
		}
	}
	m.generations[link]++
	m.clearHandleLocked(link)
	m.mu.Unlock()

	if b != nil {
		b.UnlinkToDeath()
	}
	m.setState(link, StateDisconnected)
}

func (m *Manager) clearHandleLocked(link LinkID) {
	switch link {
	case LinkDisplay:
		m.display = nil
	case LinkTouch:
		m.touch = nil
	}
}

func (m *Manager) allConnectedLocked() bool {
	return m.states[LinkDisplay] == StateConnected && m.states[LinkTouch] == StateConnected
}

func (m *Manager) setState(link LinkID, s State) {
	m.mu.Lock()
	old := m.states[link]
	if old == s {
		m.mu.Unlock()
		return
	}
	m.states[link] = s
	callback := m.onStateChange
	m.mu.Unlock()

	if callback != nil {
		callback(link, old, s)
	}
}

func (m *Manager) debugLog(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}

func (m *Manager) logWarn(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, args...)
	}
}

// IsUnavailable reports whether err means the target link was not connected.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrHardwareUnavailable)
}
