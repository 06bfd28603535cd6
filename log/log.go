// Package log 日志模块
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cxykevin/tinyjson/internal/configutil"
)

const defaultLogPath = "~/.config/tinyjson/log.log"
const envLogName = "TINYJSON_LOG_PATH"

var logPath string

// Logger 日志对象
var Logger *log.Logger

var loggerInited bool = false

// 异步日志相关
type logMessage struct {
	level      string
	moduleName string
	message    string
}

var logChannel chan logMessage
var logWaitGroup sync.WaitGroup
var logFlushMutex sync.Mutex
var droppedLogCount uint64
var isShutdown uint32
var debugEnabled uint32

// Load 加载配置文件
func Load() {
	if loggerInited {
		return
	}
	// 读取环境变量
	if path := os.Getenv(envLogName); path != "" {
		logPath = path
	} else {
		logPath = defaultLogPath
	}

	// 展开用户目录路径
	expandedPath := configutil.ExpandPath(logPath)

	// 目录创建失败时丢弃日志
	var out io.Writer = io.Discard
	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err == nil {
		// 新建/清空日志
		file, err := os.OpenFile(expandedPath, os.O_APPEND|os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			// 直接 panic
			panic(err)
		}
		out = file
	}

	// 创建logger，输出到文件
	Logger = log.New(out, "", log.LstdFlags)

	// 初始化异步日志channel
	logChannel = make(chan logMessage, 1000) // 缓冲1000条日志

	// 启动日志处理goroutine
	go logWorker()

	loggerInited = true

	sysObj := New("log")
	sysObj.Info("log inited")
}

// Path 返回展开后的日志文件路径
func Path() string {
	return configutil.ExpandPath(logPath)
}

// SetDebug 开关 Debug 级别日志
func SetDebug(enabled bool) {
	if enabled {
		atomic.StoreUint32(&debugEnabled, 1)
	} else {
		atomic.StoreUint32(&debugEnabled, 0)
	}
}

// Dropped 返回因队列已满被丢弃的日志条数
func Dropped() uint64 {
	return atomic.LoadUint64(&droppedLogCount)
}

// logWorker 异步日志处理worker
func logWorker() {
	for msg := range logChannel {
		str := fmt.Sprintf("[%s][%s] %s", msg.level, msg.moduleName, msg.message)
		Logger.Println(str)
		logWaitGroup.Done()
	}
}

// flushLogs 等待所有pending的日志写入完成
func flushLogs() {
	logFlushMutex.Lock()
	defer logFlushMutex.Unlock()
	logWaitGroup.Wait()
}

// Shutdown 写完队列中的日志并停止 worker，之后的日志同步写入
func Shutdown() {
	if !loggerInited || atomic.SwapUint32(&isShutdown, 1) == 1 {
		return
	}
	flushLogs()
	close(logChannel)
}

// LogsObj 模块日志对象
type LogsObj struct {
	moduleName string
}

// format 格式化、脱敏、截断并转义控制字符
func format(msg string, v ...any) string {
	str := fmt.Sprintf(msg, v...)
	str = truncate(SanitizeSensitiveInfo(str))
	return strings.ReplaceAll(strings.ReplaceAll(strings.ReplaceAll(strings.ReplaceAll(
		str,
		"\\", "\\\\"),
		"\n", "\\n"),
		"\r", "\\r"),
		"\t", "\\t")
}

func (l *LogsObj) log(level string, msg string, v ...any) {
	str := format(msg, v...)

	if atomic.LoadUint32(&isShutdown) == 1 {
		l.write(level, str)
		return
	}

	// 异步写入日志
	logFlushMutex.Lock()
	logWaitGroup.Add(1)
	logFlushMutex.Unlock()

	select {
	case logChannel <- logMessage{
		level:      level,
		moduleName: l.moduleName,
		message:    str,
	}:
	default:
		logWaitGroup.Done()
		atomic.AddUint64(&droppedLogCount, 1)
		l.logSync("WARN", "log channel full, drop log (total dropped: %d)", atomic.LoadUint64(&droppedLogCount))
	}
}

func (l *LogsObj) logSync(level string, msg string, v ...any) {
	l.write(level, format(msg, v...))
}

// write 同步写入已格式化的日志
func (l *LogsObj) write(level string, str string) {
	Logger.Printf("[%s][%s] %s", level, l.moduleName, str)
}

// Info 打印日志
func (l *LogsObj) Info(msg string, v ...any) {
	l.log("INFO", msg, v...)
}

// Warn 打印警告
func (l *LogsObj) Warn(msg string, v ...any) {
	l.log("WARN", msg, v...)
}

// Error 打印错误 - 强制同步写入
func (l *LogsObj) Error(msg string, v ...any) {
	// 先flush所有pending的日志
	flushLogs()
	// 然后同步写入error日志
	l.logSync("ERROR", msg, v...)
}

// Debug 打印调试，未开启 SetDebug 时忽略
func (l *LogsObj) Debug(msg string, v ...any) {
	if atomic.LoadUint32(&debugEnabled) == 0 {
		return
	}
	l.log("DEBUG", msg, v...)
}

// New 创建日志对象
func New(moduleName string) *LogsObj {
	if !loggerInited {
		Load()
	}
	return &LogsObj{moduleName: moduleName}
}
