// Package localization 为插件提供多语言文件加载与按顺序回退的查找。
//
// 语言文件位于插件数据目录下的语言目录（默认 "lang"），文件名即语言名，
// 例如 lang/zh-CN.yml。添加语言的顺序就是回退顺序：查找时依次询问每种语言，
// 返回第一个命中的值，全部未命中时返回空字符串。
package localization

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lifei6671/guizhanlib/internal/logger"
	"github.com/lifei6671/guizhanlib/plugin"
)

// DefaultFolder 是默认的语言目录名。
const DefaultFolder = "lang"

const fileExt = ".yml"

// ErrResourceNotFound 表示插件没有打包对应的语言文件。
var ErrResourceNotFound = plugin.ErrResourceNotFound

// Localization 是插件的本地化服务。
// 应在读取配置之后、注册物品之前创建。
type Localization struct {
	mu         sync.RWMutex
	plugin     plugin.Plugin
	folderName string
	folder     string
	order      []string // fallback chain
	langs      map[string]*Language
	initial    []string
	log        *logrus.Entry
}

// Option 配置 Localization。
type Option func(*Localization)

// WithFolder 指定语言目录名。
func WithFolder(name string) Option {
	return func(l *Localization) {
		l.folderName = name
	}
}

// WithLanguages 在创建后立即按顺序添加语言。
func WithLanguages(names ...string) Option {
	return func(l *Localization) {
		l.initial = append(l.initial, names...)
	}
}

// New 创建本地化服务，并确保数据目录与语言目录存在。
func New(p plugin.Plugin, opts ...Option) (*Localization, error) {
	if p == nil {
		return nil, errors.New("plugin is required")
	}
	l := &Localization{
		plugin:     p,
		folderName: DefaultFolder,
		langs:      make(map[string]*Language),
	}
	if entry := p.Logger(); entry != nil {
		l.log = entry.WithField("component", "localization")
	} else {
		l.log = logger.Named("localization")
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.folderName == "" {
		return nil, errors.New("language folder name is required")
	}

	l.folder = filepath.Join(p.DataFolder(), l.folderName)
	if err := os.MkdirAll(l.folder, 0o755); err != nil {
		return nil, fmt.Errorf("create language folder %s: %w", l.folder, err)
	}

	for _, name := range l.initial {
		// 缺少打包资源只记录日志，不影响其余语言
		if err := l.AddLanguage(name); err != nil && !errors.Is(err, ErrResourceNotFound) {
			return nil, err
		}
	}
	return l, nil
}

// Folder 返回语言目录的完整路径。
func (l *Localization) Folder() string {
	return l.folder
}

// AddLanguage 加载一种语言并追加到回退链末尾。
// 数据目录中没有该文件时从插件资源复制；资源也不存在时记录错误并返回 ErrResourceNotFound。
// 重复添加同名语言会替换其内容，但保持原有位置。
func (l *Localization) AddLanguage(name string) error {
	if name == "" {
		return errors.New("language name is required")
	}
	lang, err := l.loadLanguage(name)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.langs[name]; !ok {
		l.order = append(l.order, name)
	}
	l.langs[name] = lang
	return nil
}

func (l *Localization) loadLanguage(name string) (*Language, error) {
	file := filepath.Join(l.folder, name+fileExt)
	resource := l.folderName + "/" + name + fileExt

	if _, err := os.Stat(file); err != nil {
		if err := plugin.SaveResource(l.plugin, resource, false); err != nil {
			if errors.Is(err, ErrResourceNotFound) {
				l.log.WithField("resource", resource).Error("the language file does not exist in plugin resources")
			}
			return nil, err
		}
	}

	defaults, err := plugin.ReadResource(l.plugin, resource)
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return nil, err
	}
	return NewLanguage(name, file, defaults)
}

// Reload 按原顺序重新读取所有语言文件。
func (l *Localization) Reload() error {
	names := l.Languages()
	loaded := make(map[string]*Language, len(names))
	for _, name := range names {
		lang, err := l.loadLanguage(name)
		if err != nil {
			return fmt.Errorf("reload language %s: %w", name, err)
		}
		loaded[name] = lang
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for name, lang := range loaded {
		l.langs[name] = lang
	}
	l.log.WithField("languages", len(loaded)).Debug("languages reloaded")
	return nil
}

// Languages 返回当前的回退链。
func (l *Localization) Languages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.order...)
}

// Language 返回指定名称的语言。
func (l *Localization) Language(name string) (*Language, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lang, ok := l.langs[name]
	return lang, ok
}

// String 返回路径对应的本地化文本，所有语言都没有非空值时返回空字符串。
func (l *Localization) String(path string) string {
	if path == "" {
		return ""
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, name := range l.order {
		if text, ok := l.langs[name].section.String(path); ok && text != "" {
			return text
		}
	}
	return ""
}

// StringList 返回路径对应的本地化文本列表，全部未命中时返回空切片。
func (l *Localization) StringList(path string) []string {
	if path == "" {
		return []string{}
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, name := range l.order {
		if list := l.langs[name].section.StringList(path); len(list) > 0 {
			return list
		}
	}
	return []string{}
}

// StringArray 是 StringList 的别名。
func (l *Localization) StringArray(path string) []string {
	return l.StringList(path)
}

// Format 查找本地化文本并替换其中的 {name} 等占位符。
// 模板解析或渲染失败时退化为原文。
func (l *Localization) Format(path string, args map[string]any) string {
	text := l.String(path)
	if text == "" {
		return ""
	}
	res, err := RenderTemplate(text, args)
	if err != nil {
		l.log.WithField("path", path).WithError(err).Debug("render template failed")
		return text
	}
	return res
}
