package i

// Logger writes leveled log lines for one subsystem.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
