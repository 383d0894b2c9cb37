package memvfs

import (
	"github.com/mwantia/memvfs/host"
	"github.com/mwantia/memvfs/log"
)

// newSinkBridge maps logger levels onto the host's severity codes and
// forwards each entry into the host sink. Error and Fatal report as
// errors, Warn as warnings, everything else as notices.
func newSinkBridge(sink host.LogSink) log.Sink {
	return func(level log.LogLevel, msg string) {
		var code host.Status
		switch level {
		case log.Error, log.Fatal:
			code = host.StatusError
		case log.Warn:
			code = host.StatusWarning
		default:
			code = host.StatusNotice
		}

		sink(code, []byte(msg))
	}
}
