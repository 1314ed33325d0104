// Package notify posts desktop notifications over the freedesktop
// notification service.
package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	serviceName                    = "org.freedesktop.Notifications"
	servicePath    dbus.ObjectPath = "/org/freedesktop/Notifications"
	notifyMethod                   = serviceName + ".Notify"
	defaultAppName                 = "brainbar"
	defaultTimeout int32           = 5000
)

// Notifier shows a short message to the user outside the capture surface.
type Notifier interface {
	Notify(ctx context.Context, summary, body string) error
}

// DBus sends notifications on the session bus.
type DBus struct {
	AppName string
	Icon    string
	Timeout int32

	connect func() (*dbus.Conn, error)
}

// NewDBus returns a notifier that opens a session bus connection per message.
func NewDBus() *DBus {
	return &DBus{
		AppName: defaultAppName,
		Icon:    "dialog-warning",
		Timeout: defaultTimeout,
		connect: func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() },
	}
}

// Notify implements Notifier.
func (n *DBus) Notify(ctx context.Context, summary, body string) error {
	conn, err := n.connect()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	call := conn.Object(serviceName, servicePath).CallWithContext(ctx, notifyMethod, 0,
		n.AppName,
		uint32(0),
		n.Icon,
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(byte(1))},
		n.Timeout,
	)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}
	return nil
}

// Nop discards every notification.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(context.Context, string, string) error { return nil }
