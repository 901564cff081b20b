package macid

import (
	"log/slog"
	"time"
)

// Name identifies this component's category in a composite device identifier.
const Name = "MACAddress"

// defaultTimeout is the default timeout for system command execution.
const defaultTimeout = 5 * time.Second

// Component collects the hardware addresses of the host's network adapters
// and renders them as one device-identifier component value.
// A Component holds no state besides its configuration and is safe for
// concurrent use once configuration is complete.
type Component struct {
	querier            Querier
	commandExecutor    CommandExecutor
	logger             *slog.Logger
	excludeNonPhysical bool
	excludeWireless    bool
}

// New creates a new Component that queries the local host.
// By default no adapters are excluded.
func New() *Component {
	c := &Component{
		commandExecutor: &defaultCommandExecutor{
			Timeout: defaultTimeout,
		},
	}
	c.querier = newSystemQuerier(c)

	return c
}

// WithExcludeNonPhysical excludes adapters that are not backed by hardware,
// such as VPN, container, and hypervisor adapters.
func (c *Component) WithExcludeNonPhysical() *Component {
	c.excludeNonPhysical = true

	return c
}

// WithExcludeWireless excludes 802.11 adapters. The legacy schema cannot
// tell wireless adapters apart, so the option has no effect when the
// component falls back to it.
func (c *Component) WithExcludeWireless() *Component {
	c.excludeWireless = true

	return c
}

// WithQuerier replaces the host's device-management interface, enabling
// deterministic testing without real adapters.
func (c *Component) WithQuerier(querier Querier) *Component {
	c.querier = querier

	return c
}

// WithExecutor sets a custom [CommandExecutor] used by queriers that read
// adapters from system commands.
func (c *Component) WithExecutor(executor CommandExecutor) *Component {
	c.commandExecutor = executor

	return c
}

// WithLogger sets an optional [*slog.Logger] for observability.
// When set, the component logs schema attempts, fallbacks, excluded
// adapters, and command timing. A nil logger (the default) disables all
// logging.
func (c *Component) WithLogger(logger *slog.Logger) *Component {
	c.logger = logger

	return c
}

// Name returns [Name].
func (c *Component) Name() string {
	return Name
}

// logDebug logs at debug level if a logger is configured.
func (c *Component) logDebug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

// logInfo logs at info level if a logger is configured.
func (c *Component) logInfo(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (c *Component) logWarn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
