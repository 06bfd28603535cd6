package storage

import (
	"context"
	"errors"
	"time"

	tlog "github.com/cxykevin/tinyjson/log"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var gLogger = tlog.New("gorm")

// Logger 把 gorm 日志转发到 log 模块
type Logger struct {
	slow  time.Duration
	level gormLogger.LogLevel
}

// New 创建日志器
func New() gormLogger.Interface {
	return &Logger{
		slow:  time.Millisecond * 300,
		level: gormLogger.Warn,
	}
}

// LogMode 设置日志级别
func (l *Logger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.level = level
	return &nl
}

// Info 打印信息级别日志
func (l *Logger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormLogger.Info {
		gLogger.Info(msg, data...)
	}
}

// Warn 打印警告级别日志
func (l *Logger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormLogger.Warn {
		gLogger.Warn(msg, data...)
	}
}

// Error 打印错误级别日志
func (l *Logger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormLogger.Error {
		gLogger.Error(msg, data...)
	}
}

// Trace 跟踪 SQL 执行耗时与错误
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	elapsedMs := float64(elapsed.Nanoseconds()) / 1e6

	// 查不到记录由调用方处理
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormLogger.Error {
		gLogger.Error("[%.3fms] rows:%d %s; error: %v", elapsedMs, rows, sql, err)
		return
	}

	if l.slow > 0 && elapsed > l.slow && l.level >= gormLogger.Warn {
		gLogger.Warn("slow query > %s [%.3fms] rows:%d %s", l.slow, elapsedMs, rows, sql)
		return
	}

	gLogger.Debug("[%.3fms] rows:%d %s", elapsedMs, rows, sql)
}
