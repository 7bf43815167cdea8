package logging

import "context"

// ShipFunc delivers a single log record to the backend telemetry endpoint.
// Implementations must be best-effort: errors are swallowed by RemoteLogger.
type ShipFunc func(ctx context.Context, level string, message string, meta map[string]any)

// RemoteLogger forwards records to a local Logger and additionally ships
// every record to the backend via ship. Shipping happens in a goroutine so
// a slow or unreachable backend never blocks the caller.
type RemoteLogger struct {
	local Logger
	ship  ShipFunc
}

func NewRemoteLogger(local Logger, ship ShipFunc) *RemoteLogger {
	return &RemoteLogger{local: local, ship: ship}
}

func (r *RemoteLogger) send(level, msg string, args []any) {
	if r.ship == nil {
		return
	}
	meta := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		meta[key] = args[i+1]
	}
	go r.ship(context.Background(), level, msg, meta)
}

func (r *RemoteLogger) Debug(ctx context.Context, msg string, args ...any) {
	r.local.Debug(ctx, msg, args...)
	r.send("debug", msg, args)
}

func (r *RemoteLogger) Info(ctx context.Context, msg string, args ...any) {
	r.local.Info(ctx, msg, args...)
	r.send("info", msg, args)
}

func (r *RemoteLogger) Warn(ctx context.Context, msg string, args ...any) {
	r.local.Warn(ctx, msg, args...)
	r.send("warn", msg, args)
}

func (r *RemoteLogger) Error(ctx context.Context, msg string, args ...any) {
	r.local.Error(ctx, msg, args...)
	r.send("error", msg, args)
}

func (r *RemoteLogger) With(args ...any) Logger {
	return &RemoteLogger{local: r.local.With(args...), ship: r.ship}
}
