package sig

import (
	"os"
	"os/signal"
	"syscall"
)

var termSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT}

func TermSignals() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, termSignals...)
	return ch
}
