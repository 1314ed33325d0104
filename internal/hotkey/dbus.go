package hotkey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"
)

// Session bus coordinates. A desktop shortcut bound to `brainbar chord` calls
// Activate on this object.
const (
	BusName                    = "io.github.faizmokh.Brainbar"
	ObjectPath dbus.ObjectPath = "/io/github/faizmokh/Brainbar"
	Interface                  = "io.github.faizmokh.Brainbar.Hotkey"
)

// ErrBusNameTaken means another process already owns BusName.
var ErrBusNameTaken = errors.New("bus name already taken")

// DBusBridge receives the global chord as a method call on the session bus.
type DBusBridge struct {
	bind   binding
	logger *slog.Logger

	mu      sync.Mutex
	conn    *dbus.Conn
	connect func() (*dbus.Conn, error)
}

// NewDBusBridge returns a bridge that connects lazily on Register.
func NewDBusBridge(logger *slog.Logger) *DBusBridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &DBusBridge{
		logger:  logger.With("component", "hotkey_dbus"),
		connect: func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() },
	}
}

// Register claims BusName and exports the activation object.
func (b *DBusBridge) Register(chord Chord, fn func()) error {
	if chord.IsZero() {
		return fmt.Errorf("%w: empty", ErrInvalidChord)
	}
	if err := b.bind.set(chord, fn); err != nil {
		return err
	}

	conn, err := b.connect()
	if err != nil {
		b.bind.clear()
		return fmt.Errorf("connect session bus: %w", err)
	}

	reply, err := conn.RequestName(BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		b.bind.clear()
		return fmt.Errorf("request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		b.bind.clear()
		return ErrBusNameTaken
	}

	if err := conn.Export(&activator{bind: &b.bind, logger: b.logger}, ObjectPath, Interface); err != nil {
		conn.ReleaseName(BusName)
		conn.Close()
		b.bind.clear()
		return fmt.Errorf("export activator: %w", err)
	}

	b.mu.Lock()
	b.conn = conn
	b.mu.Unlock()

	b.logger.Debug("global chord registered", "chord", chord.String(), "bus_name", BusName)
	return nil
}

// Unregister withdraws the object and releases the bus connection.
func (b *DBusBridge) Unregister() error {
	b.bind.clear()

	b.mu.Lock()
	conn := b.conn
	b.conn = nil
	b.mu.Unlock()
	if conn == nil {
		return nil
	}

	conn.Export(nil, ObjectPath, Interface)
	if _, err := conn.ReleaseName(BusName); err != nil {
		b.logger.Debug("release bus name failed", "error", err)
	}
	return conn.Close()
}

// activator is the object exported on the bus.
type activator struct {
	bind   *binding
	logger *slog.Logger
}

// Activate is invoked over D-Bus with the chord the desktop observed.
func (a *activator) Activate(chord string) *dbus.Error {
	parsed, err := ParseChord(chord)
	if err != nil {
		return dbus.MakeFailedError(err)
	}
	if !a.bind.fire(parsed) {
		a.logger.Debug("ignoring unmatched chord", "chord", parsed.String())
		return dbus.NewError(Interface+".NoMatch", []interface{}{"chord " + parsed.String() + " is not registered"})
	}
	return nil
}

// Activate delivers chord to the session that owns BusName.
func Activate(ctx context.Context, chord Chord) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	call := conn.Object(BusName, ObjectPath).CallWithContext(ctx, Interface+".Activate", 0, chord.String())
	if call.Err != nil {
		return fmt.Errorf("activate %s: %w", chord, call.Err)
	}
	return nil
}
