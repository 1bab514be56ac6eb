package jobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CronLogger adapts zap.Logger to cron's Logger interface
type CronLogger struct {
	logger *zap.Logger
}

// NewCronLogger creates a new zap logger adapter for cron
func NewCronLogger(logger *zap.Logger) cron.Logger {
	return &CronLogger{logger: logger}
}

// Info logs routine messages about cron's operation at debug level
func (c *CronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.logger.Debug(msg, convertKeyvalsToFields(keysAndValues...)...)
}

// Error logs an error condition
func (c *CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := append(convertKeyvalsToFields(keysAndValues...), zap.Error(err))
	c.logger.Error(msg, fields...)
}

// convertKeyvalsToFields converts key1, val1, key2, val2, ... into zap fields
func convertKeyvalsToFields(keyvals ...interface{}) []zap.Field {
	if len(keyvals)%2 != 0 {
		keyvals = keyvals[:len(keyvals)-1]
	}

	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	return fields
}
