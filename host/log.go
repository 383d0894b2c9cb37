package host

// LogSink is the logging entry point the host supplies at registration
// time. The code is one of StatusError, StatusWarning or StatusNotice;
// the message bytes are a single diagnostic line without trailing newline.
//
// Sinks are invoked best-effort from inside VFS operations and must not
// assume any particular goroutine or ordering.
type LogSink func(code Status, msg []byte)
