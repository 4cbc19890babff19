// Package plugin 描述宿主插件：数据目录、打包资源与日志。
//
// 游戏服务端负责插件的生命周期，这里只保留本库需要的最小接口，
// 以及一个基于目录和 fs.FS 的默认实现。
package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lifei6671/guizhanlib/internal/logger"
)

// ErrResourceNotFound 表示打包资源中不存在指定文件。
var ErrResourceNotFound = errors.New("resource not found")

// Plugin 是宿主插件需要提供的能力。
type Plugin interface {
	Name() string
	// DataFolder 返回插件的数据目录。
	DataFolder() string
	// Resources 返回插件打包的只读资源，路径使用 "/" 分隔。
	Resources() fs.FS
	Logger() *logrus.Entry
}

// Base 是 Plugin 的默认实现。
type Base struct {
	name       string
	dataFolder string
	resources  fs.FS
	log        *logrus.Entry
}

// Option 配置 Base。
type Option func(*Base)

// WithLogger 替换默认日志入口。
func WithLogger(entry *logrus.Entry) Option {
	return func(b *Base) {
		if entry != nil {
			b.log = entry
		}
	}
}

// New 创建一个插件实例，resources 为 nil 时视为没有任何打包资源。
func New(name, dataFolder string, resources fs.FS, opts ...Option) *Base {
	b := &Base{
		name:       name,
		dataFolder: dataFolder,
		resources:  resources,
		log:        logger.Named("plugin").WithField("plugin", name),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Base) Name() string          { return b.name }
func (b *Base) DataFolder() string    { return b.dataFolder }
func (b *Base) Logger() *logrus.Entry { return b.log }

func (b *Base) Resources() fs.FS {
	if b.resources == nil {
		return emptyFS{}
	}
	return b.resources
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// ReadResource 读取打包资源，资源不存在时返回 ErrResourceNotFound。
func ReadResource(p Plugin, name string) ([]byte, error) {
	data, err := fs.ReadFile(p.Resources(), path.Clean(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrResourceNotFound)
		}
		return nil, fmt.Errorf("read resource %s: %w", name, err)
	}
	return data, nil
}

// SaveResource 将打包资源复制到数据目录下的同名路径。
// 目标已存在且 replace 为 false 时不做任何操作。
func SaveResource(p Plugin, name string, replace bool) error {
	target := filepath.Join(p.DataFolder(), filepath.FromSlash(name))
	if !replace {
		if _, err := os.Stat(target); err == nil {
			return nil
		}
	}
	data, err := ReadResource(p, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create folder for %s: %w", name, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("save resource %s: %w", name, err)
	}
	return nil
}

// LoadConfig 读取数据目录下的配置文件（例如 config.yml）到 out。
// 文件不存在时先从打包资源复制一份默认配置。
func LoadConfig(p Plugin, name string, out any) error {
	if err := SaveResource(p, name, false); err != nil && !errors.Is(err, ErrResourceNotFound) {
		return err
	}
	data, err := os.ReadFile(filepath.Join(p.DataFolder(), filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("yaml unmarshal %s: %w", name, err)
	}
	return nil
}
