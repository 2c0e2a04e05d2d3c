// Package observe provides ready-made observers for proxy dispatch events.
package observe

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-presenter-cache/proxy"
)

// ZapObserver logs dispatch events through a zap logger at debug level.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an observer writing to log. A nil logger is
// replaced with a no-op logger.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapObserver{log: log}
}

// On implements proxy.Observer.
func (o *ZapObserver) On(data proxy.EventData) {
	o.log.Debug("proxy dispatch",
		zap.String("event", data.Event.String()),
		zap.String("proxy_id", data.ProxyID),
		zap.String("operation", data.Operation),
	)
}
