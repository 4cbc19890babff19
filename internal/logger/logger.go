// Package logger 封装 logrus，统一插件与命令行工具的日志格式。
package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Entry/Fields 暴露底层类型，避免调用方直接依赖 logrus 包。
type Entry = logrus.Entry
type Fields = logrus.Fields

var rootLogger = newRoot()

func newRoot() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(PlainFormatter{})
	return l
}

// Root 返回全局共享的 logger。
func Root() *logrus.Logger {
	return rootLogger
}

// SetOutput 重定向全局日志输出。
func SetOutput(w io.Writer) {
	rootLogger.SetOutput(w)
}

// SetLevel 按名称设置日志级别，无法识别时保持不变并返回错误。
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", name, err)
	}
	rootLogger.SetLevel(lvl)
	return nil
}

// Named 为指定组件创建入口，统一 component 字段。
func Named(component string) *Entry {
	entry := logrus.NewEntry(rootLogger)
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

// PlainFormatter 输出格式：[timestamp] [LEVEL] [component] message fields。
type PlainFormatter struct{}

// Format 实现 logrus Formatter。
func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}
	parts := make([]string, 0, 5)
	parts = append(parts, fmt.Sprintf("[%s]", entry.Time.UTC().Format(time.RFC3339)))
	parts = append(parts, fmt.Sprintf("[%s]", strings.ToUpper(entry.Level.String())))
	if component, ok := entry.Data["component"].(string); ok && component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", component))
	}
	parts = append(parts, entry.Message)
	if fields := formatFields(entry.Data); fields != "" {
		parts = append(parts, fields)
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

func formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "component" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}
