package postgres

import (
	"context"
	"log/slog"
	"time"

	"blog/config"

	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM's logs through the application's slog.Logger so
// SQL diagnostics carry the same shape as every other log line.
type gormSlogLogger struct {
	logger *slog.Logger
	debug  bool
}

func newGormSlogLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	debug := false
	if cfg != nil {
		debug = cfg.Env.Debug
	}

	return &gormSlogLogger{logger: logger, debug: debug}
}

// LogMode is a no-op; verbosity follows the application config instead.
func (l *gormSlogLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, slog.Any("args", args))
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, slog.Any("args", args))
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, slog.Any("args", args))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	switch {
	case err != nil:
		sql, rows := fc()
		l.logger.ErrorContext(ctx, "SQL error",
			slog.Any("error", err),
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	case elapsed >= slowQueryThreshold:
		sql, rows := fc()
		l.logger.WarnContext(ctx, "Slow SQL",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	case l.debug:
		sql, rows := fc()
		l.logger.DebugContext(ctx, "SQL",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}
