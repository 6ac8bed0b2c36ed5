package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 请求链路 ID 在 Context 中的键名，由 TraceMiddleware 写入
const TraceIDKey = "trace_id"

// ContextHandler 在每条日志上附加 ctx 中的 trace_id，便于按请求串联日志
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String("trace_id", traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
