package systemd

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/NVIDIA/node-facts/pkg/defaults"
	"github.com/NVIDIA/node-facts/pkg/facts"
	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

var _ resolvers.SystemDSource = (*Collector)(nil)

// conn is the part of *dbus.Conn the collector uses.
type conn interface {
	GetManagerProperty(prop string) (string, error)
	GetUnitPropertiesContext(ctx context.Context, unit string) (map[string]any, error)
	Close()
}

// Collector reads the systemd manager version and the state of a set of
// units over D-Bus.
type Collector struct {
	// Services are the units to report. Defaults to defaults.SystemDServices.
	Services []string

	// Timeout bounds the whole collection. Defaults to defaults.CollectorTimeout.
	Timeout time.Duration

	dial func(ctx context.Context) (conn, error)
}

func dialSystemd(ctx context.Context) (conn, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorConnectTimeout)
	defer cancel()
	c, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CollectSystemD connects to systemd and reads the manager version and the
// configured units. An unreachable systemd (containers, non-Linux hosts)
// yields empty data; units that are not loaded are left out.
func (s *Collector) CollectSystemD(*facts.Collection) (resolvers.SystemDData, error) {
	var d resolvers.SystemDData

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaults.CollectorTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	dial := s.dial
	if dial == nil {
		dial = dialSystemd
	}
	c, err := dial(ctx)
	if err != nil {
		slog.Debug("systemd unavailable", slog.String("error", err.Error()))
		return d, nil
	}
	defer c.Close()

	if v, err := c.GetManagerProperty("Version"); err != nil {
		slog.Debug("failed to read systemd version", slog.String("error", err.Error()))
	} else {
		d.Version = strings.Trim(v, `"`)
	}

	services := s.Services
	if len(services) == 0 {
		services = defaults.SystemDServices
	}
	for _, service := range services {
		props, err := c.GetUnitPropertiesContext(ctx, service)
		if err != nil {
			slog.Debug("failed to get unit properties",
				slog.String("unit", service),
				slog.String("error", err.Error()))
			continue
		}
		if property(props, "LoadState") == "not-found" {
			continue
		}
		d.Units = append(d.Units, resolvers.UnitState{
			Name:          service,
			ActiveState:   property(props, "ActiveState"),
			SubState:      property(props, "SubState"),
			UnitFileState: property(props, "UnitFileState"),
		})
	}

	return d, nil
}

func property(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}
