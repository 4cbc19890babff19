package localization

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Section 是一份语言文件的内容，按 "a.b.c" 形式的路径访问。
// 当前文件中不存在的路径会继续在 defaults 中查找。
type Section struct {
	doc      *yaml.Node // 原始文档，写回时保留注释、键顺序与标量原文
	values   map[string]any
	defaults *Section
}

// ParseSection 解析 YAML 文本，空文本得到空的 Section。
func ParseSection(data []byte) (*Section, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	var raw map[string]any
	if len(doc.Content) > 0 {
		if err := doc.Decode(&raw); err != nil {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
	}
	if raw == nil {
		raw = make(map[string]any)
	}
	return &Section{doc: &doc, values: normalize(raw).(map[string]any)}, nil
}

// normalize 把 yaml 解出的 map[any]any 统一为 map[string]any。
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}

// SetDefaults 设置默认值来源，通常是插件打包的语言文件。
func (s *Section) SetDefaults(defaults *Section) {
	s.defaults = defaults
}

// Get 返回路径对应的原始值，当前文件没有时查找默认值。
func (s *Section) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	if v, ok := lookup(s.values, path); ok {
		return v, true
	}
	if s.defaults != nil {
		return s.defaults.Get(path)
	}
	return nil, false
}

// lookup 优先匹配包含 "." 的完整键，其次按 "." 逐级深入。
func lookup(m map[string]any, path string) (any, bool) {
	if v, ok := m[path]; ok && v != nil {
		return v, true
	}
	head, rest, found := strings.Cut(path, ".")
	if !found {
		return nil, false
	}
	child, ok := m[head].(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(child, rest)
}

// String 返回路径对应的标量值，路径指向子节或列表时返回 false。
func (s *Section) String(path string) (string, bool) {
	v, ok := s.Get(path)
	if !ok {
		return "", false
	}
	switch v.(type) {
	case map[string]any, []any:
		return "", false
	}
	return scalarString(v), true
}

// StringList 返回路径对应的字符串列表，不存在或不是列表时返回空切片。
func (s *Section) StringList(path string) []string {
	v, _ := s.Get(path)
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		switch item.(type) {
		case nil, map[string]any, []any:
			continue
		}
		list = append(list, scalarString(item))
	}
	return list
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Keys 返回所有叶子节点的完整路径（包括默认值中的），按字典序排列。
func (s *Section) Keys() []string {
	set := make(map[string]struct{})
	for sec := s; sec != nil; sec = sec.defaults {
		collectKeys(sec.values, "", set)
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func collectKeys(m map[string]any, prefix string, set map[string]struct{}) {
	for k, v := range m {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			collectKeys(child, full, set)
			continue
		}
		set[full] = struct{}{}
	}
}

// Marshal 序列化当前文件的内容，不包含默认值。
// 注释、键顺序与数值的书写形式保持原样。
func (s *Section) Marshal() ([]byte, error) {
	if len(s.values) == 0 || s.doc == nil {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s.doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
