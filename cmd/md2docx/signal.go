package main

import (
	"context"
	"os"
	"os/signal"
)

// stopSignals cancel a running render. Platforms add to it in init.
var stopSignals = []os.Signal{os.Interrupt}

// notifyContext returns a context canceled on the first stop signal.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, stopSignals...)
}
