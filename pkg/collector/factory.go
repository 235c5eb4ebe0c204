package collector

import (
	"errors"

	"github.com/NVIDIA/node-facts/pkg/collector/os"
	"github.com/NVIDIA/node-facts/pkg/collector/systemd"
	"github.com/NVIDIA/node-facts/pkg/defaults"
	"github.com/NVIDIA/node-facts/pkg/facts"
	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

// Factory creates resolvers with their data sources.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateProcessorResolver() facts.Resolver
	CreateMemoryResolver() facts.Resolver
	CreateKernelResolver() facts.Resolver
	CreateOperatingSystemResolver() facts.Resolver
	CreateSystemDResolver() facts.Resolver
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithSystemDServices sets the units reported by the systemd resolver.
func WithSystemDServices(services []string) Option {
	return func(f *DefaultFactory) {
		f.SystemDServices = services
	}
}

// WithProcPath points the host collectors at another procfs mount.
func WithProcPath(path string) Option {
	return func(f *DefaultFactory) {
		f.ProcPath = path
	}
}

// WithSysPath points the host collectors at another sysfs mount.
func WithSysPath(path string) Option {
	return func(f *DefaultFactory) {
		f.SysPath = path
	}
}

// WithReleasePaths sets the os-release candidates.
func WithReleasePaths(paths ...string) Option {
	return func(f *DefaultFactory) {
		f.ReleasePaths = paths
	}
}

// DefaultFactory creates resolvers backed by the host.
type DefaultFactory struct {
	SystemDServices []string
	ProcPath        string
	SysPath         string
	ReleasePaths    []string

	host *os.Collector
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		SystemDServices: append([]string(nil), defaults.SystemDServices...),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// hostCollector returns the one os.Collector shared by the host resolvers.
func (f *DefaultFactory) hostCollector() *os.Collector {
	if f.host == nil {
		f.host = &os.Collector{
			ProcPath:     f.ProcPath,
			SysPath:      f.SysPath,
			ReleasePaths: f.ReleasePaths,
		}
	}
	return f.host
}

// CreateProcessorResolver creates the processor resolver.
func (f *DefaultFactory) CreateProcessorResolver() facts.Resolver {
	return resolvers.NewProcessorResolver(f.hostCollector())
}

// CreateMemoryResolver creates the memory resolver.
func (f *DefaultFactory) CreateMemoryResolver() facts.Resolver {
	return resolvers.NewMemoryResolver(f.hostCollector())
}

// CreateKernelResolver creates the kernel resolver.
func (f *DefaultFactory) CreateKernelResolver() facts.Resolver {
	return resolvers.NewKernelResolver(f.hostCollector())
}

// CreateOperatingSystemResolver creates the operating system resolver.
func (f *DefaultFactory) CreateOperatingSystemResolver() facts.Resolver {
	return resolvers.NewOperatingSystemResolver(f.hostCollector())
}

// CreateSystemDResolver creates the systemd resolver.
func (f *DefaultFactory) CreateSystemDResolver() facts.Resolver {
	return resolvers.NewSystemDResolver(&systemd.Collector{
		Services: f.SystemDServices,
	})
}

// Register adds every resolver f creates to c. Resolvers that cannot be
// added are reported together; the rest are still registered.
func Register(c *facts.Collection, f Factory) error {
	var errs []error
	for _, create := range []func() facts.Resolver{
		f.CreateOperatingSystemResolver,
		f.CreateKernelResolver,
		f.CreateProcessorResolver,
		f.CreateMemoryResolver,
		f.CreateSystemDResolver,
	} {
		if err := c.Add(create()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
