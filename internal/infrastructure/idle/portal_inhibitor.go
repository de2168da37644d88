// Package idle keeps the display awake during fullscreen playback using
// the host's sleep-inhibition facility.
package idle

import (
	"context"
	"fmt"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
	"github.com/godbus/dbus/v5"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// Inhibit flags defined by org.freedesktop.portal.Inhibit.
	flagSuspend = 4
	flagIdle    = 8
)

var _ port.SleepInhibitor = (*PortalInhibitor)(nil)

// portalRequest is one Inhibit call the portal is tracking.
type portalRequest struct {
	path dbus.ObjectPath
	// complete is set when the portal sent Response; the request object no
	// longer exists and must not be closed.
	complete bool
	cancel   context.CancelFunc
}

// PortalInhibitor inhibits idle and suspend through the XDG Desktop Portal.
// It works under any Wayland or X11 session that runs a portal backend.
type PortalInhibitor struct {
	mu        syncutil.Mutex
	conn      *dbus.Conn
	supported bool
	requests  map[entity.SleepToken]*portalRequest
}

// NewPortalInhibitor connects to the session bus. Without D-Bus or a portal
// every Inhibit call fails with ErrUnavailable.
func NewPortalInhibitor(ctx context.Context) *PortalInhibitor {
	log := logging.FromContext(ctx)

	inhibitor := &PortalInhibitor{
		requests: make(map[entity.SleepToken]*portalRequest),
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: cannot connect to D-Bus session bus")
		return inhibitor
	}
	inhibitor.conn = conn

	var version uint32
	err = conn.Object(portalDest, portalPath).
		Call("org.freedesktop.DBus.Properties.Get", 0, portalInterface, "version").
		Store(&version)
	if err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: portal not available")
		return inhibitor
	}

	inhibitor.supported = true
	log.Debug().Uint32("version", version).Msg("idle inhibitor: portal available")
	return inhibitor
}

// Inhibit asks the portal to block idle and suspend. The token is the
// portal request object path.
func (p *PortalInhibitor) Inhibit(ctx context.Context, reason string) (entity.SleepToken, error) {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.supported || p.conn == nil {
		log.Debug().Msg("idle inhibitor: portal unsupported")
		return "", fmt.Errorf("portal inhibit: %w", ErrUnavailable)
	}

	options := map[string]dbus.Variant{
		"reason": dbus.MakeVariant(reason),
	}

	// Inhibit(window: s, flags: u, options: a{sv}) -> handle: o
	var handle dbus.ObjectPath
	err := p.conn.Object(portalDest, portalPath).Call(portalInterface+".Inhibit", 0,
		"", // window identifier, empty outside a sandbox
		uint32(flagIdle|flagSuspend),
		options,
	).Store(&handle)
	if err != nil {
		log.Warn().Err(err).Msg("idle inhibitor: failed to inhibit")
		return "", fmt.Errorf("portal inhibit: %w", err)
	}

	token := entity.SleepToken(handle)
	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.requests[token] = &portalRequest{path: handle, cancel: cancel}
	go p.watchForResponse(watchCtx, token)

	log.Info().Str("handle", string(handle)).Str("reason", reason).Msg("idle inhibitor: activated")
	return token, nil
}

// watchForResponse marks a request complete when the portal answers it.
// Some portals (GNOME) respond immediately, removing the Request object.
func (p *PortalInhibitor) watchForResponse(ctx context.Context, token entity.SleepToken) {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return
	}

	handle := dbus.ObjectPath(token)
	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='Response',path='%s'",
		requestIface, handle,
	)
	if err := conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: failed to add signal match")
		return
	}

	signals := make(chan *dbus.Signal, 1)
	conn.Signal(signals)
	defer func() {
		conn.RemoveSignal(signals)
		_ = conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
	}()

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return
			}
			if sig.Path != handle || sig.Name != requestIface+".Response" {
				continue
			}
			p.mu.Lock()
			if req, ok := p.requests[token]; ok {
				req.complete = true
			}
			p.mu.Unlock()
			log.Debug().Str("handle", string(handle)).Msg("idle inhibitor: request completed by portal")
			return
		case <-ctx.Done():
			return
		}
	}
}

// Uninhibit closes the portal request behind token. Unknown tokens are ignored.
func (p *PortalInhibitor) Uninhibit(ctx context.Context, token entity.SleepToken) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	req, ok := p.requests[token]
	if !ok {
		return nil
	}
	delete(p.requests, token)
	req.cancel()

	if req.complete {
		log.Info().Msg("idle inhibitor: deactivated (completed by portal)")
		return nil
	}
	if p.conn == nil {
		return nil
	}

	if err := p.conn.Object(portalDest, req.path).Call(requestIface+".Close", 0).Err; err != nil {
		return fmt.Errorf("portal close request: %w", err)
	}
	log.Info().Str("handle", string(req.path)).Msg("idle inhibitor: deactivated")
	return nil
}

// Close releases every open request and the D-Bus connection.
func (p *PortalInhibitor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for token, req := range p.requests {
		req.cancel()
		if p.conn != nil && !req.complete {
			_ = p.conn.Object(portalDest, req.path).Call(requestIface+".Close", 0).Err
		}
		delete(p.requests, token)
	}

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	p.supported = false
	return err
}
