package agurk

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Engine plays games of agurk
// An engine may be reused, but it plays a single game at a time.
type Engine struct {
	room    RoomAPI
	dealer  Dealer
	options Options
	logger  logrus.FieldLogger
}

// NewEngine returns a new engine. If logger is nil, the standard logger is used.
func NewEngine(room RoomAPI, dealer Dealer, options Options, logger logrus.FieldLogger) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Engine{
		room:    room,
		dealer:  dealer,
		options: options,
		logger:  logger,
	}
}

// pause waits for d, or until ctx is done
func (e *Engine) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
