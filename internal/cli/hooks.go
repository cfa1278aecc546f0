package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ipath/pkg/observability"
)

// logHooks reports library events through the CLI logger.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.ServiceHooks   = logHooks{}
	_ observability.SelectionHooks = logHooks{}
)

// OnRequest is silent; the client traces outgoing requests with their id.
func (logHooks) OnRequest(context.Context, string) {}

func (h logHooks) OnResponse(_ context.Context, endpoint string, status, size int, d time.Duration) {
	h.logger.Debug("service response", "endpoint", endpoint, "status", status, "size", size, "elapsed", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, endpoint string, err error) {
	h.logger.Warn("service unreachable", "endpoint", endpoint, "error", err)
}

func (h logHooks) OnBuilt(rows int, attrs []string) {
	h.logger.Info("Built selection", "rows", rows, "attributes", attrs)
}

// registerHooks installs logHooks for the lifetime of the process.
func (c *CLI) registerHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetServiceHooks(h)
	observability.SetSelectionHooks(h)
}
