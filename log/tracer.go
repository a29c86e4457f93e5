package log

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// AddTracer mirrors trace and warn entries to path.trace and path.warn as JSON.
// Trace entries only reach the hook when the level allows them.
func AddTracer(path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.WarnLevel:  path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	base.Hooks.Add(hook)
}

// ResetHooks drops every hook added by AddTracer.
func ResetHooks() {
	base.ReplaceHooks(make(log.LevelHooks))
}
