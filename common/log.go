package common

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/inconshreveable/log15"
)

// NewLog returns a module scoped logger. Error and Crit records are also reported to
// sentry, which stays a no-op until sentry.Init is called.
func NewLog(module string) log15.Logger {
	lg := log15.New("module", module)
	lg.SetHandler(log15.MultiHandler(lg.GetHandler(), sentryHandler(module)))
	return lg
}

func sentryHandler(module string) log15.Handler {
	return log15.FuncHandler(func(r *log15.Record) error {
		if event := sentryEvent(module, r); event != nil {
			sentry.CaptureEvent(event)
		}
		return nil
	})
}

// sentryEvent returns nil for records below error level.
func sentryEvent(module string, r *log15.Record) *sentry.Event {
	if r.Lvl > log15.LvlError {
		return nil
	}
	event := sentry.NewEvent()
	event.Level = sentry.LevelError
	if r.Lvl == log15.LvlCrit {
		event.Level = sentry.LevelFatal
	}
	event.Message = r.Msg
	event.Timestamp = r.Time
	event.Tags["module"] = module
	for i := 0; i+1 < len(r.Ctx); i += 2 {
		event.Extra[fmt.Sprint(r.Ctx[i])] = fmt.Sprint(r.Ctx[i+1])
	}
	return event
}
