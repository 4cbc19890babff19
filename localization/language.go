package localization

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// Language 持有一种语言的翻译内容：数据目录中的文件为当前值，
// 插件打包的同名文件为默认值。
type Language struct {
	name    string
	file    string
	section *Section
}

// NewLanguage 读取 file 并以 defaults 作为默认值，随后写回 file。
// file 不存在时视为空文件；defaults 为 nil 表示没有默认值。
func NewLanguage(name, file string, defaults []byte) (*Language, error) {
	if name == "" {
		return nil, errors.New("language name is required")
	}
	if file == "" {
		return nil, fmt.Errorf("language %s: file is required", name)
	}

	raw, err := os.ReadFile(file)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read language file %s: %w", file, err)
	}
	current, err := ParseSection(raw)
	if err != nil {
		return nil, fmt.Errorf("parse language file %s: %w", file, err)
	}
	def, err := ParseSection(defaults)
	if err != nil {
		return nil, fmt.Errorf("parse default language %s: %w", name, err)
	}
	current.SetDefaults(def)

	lang := &Language{name: name, file: file, section: current}
	if err := lang.save(raw); err != nil {
		return nil, err
	}
	return lang, nil
}

// Name 返回语言名称，即不带 .yml 的文件名。
func (l *Language) Name() string {
	return l.name
}

// File 返回数据目录中的语言文件路径。
func (l *Language) File() string {
	return l.file
}

// Section 返回语言内容。
func (l *Language) Section() *Section {
	return l.section
}

// Save 将当前内容写回语言文件。
func (l *Language) Save() error {
	return l.save(nil)
}

// save 在内容与 previous 相同时跳过写入，避免触发文件监听。
func (l *Language) save(previous []byte) error {
	data, err := l.section.Marshal()
	if err != nil {
		return fmt.Errorf("marshal language %s: %w", l.name, err)
	}
	if previous != nil && bytes.Equal(data, previous) {
		return nil
	}
	if err := os.WriteFile(l.file, data, 0o644); err != nil {
		return fmt.Errorf("save language %s: %w", l.name, err)
	}
	return nil
}
