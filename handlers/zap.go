// Package handlers contains ready-made xlog.Handler implementations.
package handlers

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abyssdigger/xlog"
)

// ZapHandler mirrors xlog messages into a zap logger: LOG_INFO as Info,
// LOG_WARN as Warn, LOG_CRITICAL as Error. Formatting failures are logged at
// Error level with the template and the failure description as fields.
//
// Messages are forwarded as composed by xlog (timestamp, tag and prefixes
// included) without the trailing newline.
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler wraps lg; nil gives a handler writing to zap.NewNop().
func NewZapHandler(lg *zap.Logger) *ZapHandler {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &ZapHandler{logger: lg}
}

func zapLevel(t xlog.LogType) zapcore.Level {
	switch t {
	case xlog.LOG_WARN:
		return zapcore.WarnLevel
	case xlog.LOG_CRITICAL:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (h *ZapHandler) OnMessage(t xlog.LogType, msg string) {
	if ce := h.logger.Check(zapLevel(t), strings.TrimSuffix(msg, "\n")); ce != nil {
		ce.Write()
	}
}

func (h *ZapHandler) OnException(t xlog.LogType, format, what string) {
	h.logger.Error("log message format failed",
		zap.Stringer("type", t),
		zap.String("format", format),
		zap.String("error", what),
	)
}
