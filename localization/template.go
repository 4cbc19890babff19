package localization

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// 模板语法：{path | formatter:arg | op:value?then:else}
//   - path 支持 "player.name" 形式，逐级访问 map 或结构体字段
//   - formatter 依次作用于值，见 RegisterFormatter
//   - 条件段 op 为 eq / gt / lt，then 与 else 本身也是模板

// Node 是模板 AST 的节点。
type Node interface {
	Eval(args map[string]any) (string, error)
}

// TextNode 是原样输出的文本。
type TextNode struct {
	Text string
}

func (t *TextNode) Eval(_ map[string]any) (string, error) {
	return t.Text, nil
}

// Formatter 是占位符中的一个格式化步骤。
type Formatter struct {
	Name string
	Arg  string
}

// Conditional 是占位符末尾的条件分支。
type Conditional struct {
	Op        string
	TestValue string
	Then      string
	Else      string
}

// PlaceholderNode 对应一个 {...} 占位符。
type PlaceholderNode struct {
	Path       string
	Formatters []Formatter
	Cond       *Conditional
}

func (p *PlaceholderNode) Eval(args map[string]any) (string, error) {
	value, ok := valueByPath(args, p.Path)
	if !ok {
		return "", fmt.Errorf("value not found: %s", p.Path)
	}

	var err error
	for _, f := range p.Formatters {
		if value, err = applyFormatter(value, f.Name, f.Arg); err != nil {
			return "", err
		}
	}

	if p.Cond != nil {
		matched, err := compareValues(value, p.Cond.Op, p.Cond.TestValue)
		if err != nil {
			return "", err
		}
		if matched {
			return RenderTemplate(p.Cond.Then, args)
		}
		return RenderTemplate(p.Cond.Else, args)
	}
	return fmt.Sprint(value), nil
}

// Template 是解析后的模板。
type Template []Node

func (t Template) Eval(args map[string]any) (string, error) {
	var sb strings.Builder
	for _, node := range t {
		s, err := node.Eval(args)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

var (
	templateCache   = map[string]Template{}
	templateCacheMu sync.RWMutex
)

// RenderTemplate 解析并渲染模板，解析结果按原文缓存。
func RenderTemplate(tpl string, args map[string]any) (string, error) {
	templateCacheMu.RLock()
	t, ok := templateCache[tpl]
	templateCacheMu.RUnlock()

	if !ok {
		var err error
		if t, err = ParseTemplate(tpl); err != nil {
			return tpl, err
		}
		templateCacheMu.Lock()
		templateCache[tpl] = t
		templateCacheMu.Unlock()
	}
	return t.Eval(args)
}

// ParseTemplate 以宽松模式解析模板：
// 未闭合的 '{' 与语法错误的占位符都按普通文本输出。
func ParseTemplate(tpl string) (Template, error) {
	runes := []rune(tpl)
	var nodes Template
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, &TextNode{Text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(runes); {
		if runes[i] != '{' {
			text.WriteRune(runes[i])
			i++
			continue
		}

		end := matchBrace(runes, i)
		if end < 0 {
			text.WriteRune(runes[i])
			i++
			continue
		}

		raw := string(runes[i+1 : end])
		i = end + 1
		ph, err := parsePlaceholder(raw)
		if err != nil {
			text.WriteString("{" + raw + "}")
			continue
		}
		flush()
		nodes = append(nodes, ph)
	}
	flush()
	return nodes, nil
}

// matchBrace 返回与 runes[start] 处 '{' 配对的 '}' 下标，没有时返回 -1。
func matchBrace(runes []rune, start int) int {
	depth := 0
	for j := start; j < len(runes); j++ {
		switch runes[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func parsePlaceholder(expr string) (*PlaceholderNode, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("empty placeholder expression")
	}

	parts := splitTopLevel(expr, '|')
	ph := &PlaceholderNode{Path: strings.TrimSpace(parts[0])}
	if ph.Path == "" {
		return nil, errors.New("placeholder has empty path")
	}

	for _, part := range parts[1:] {
		seg := strings.TrimSpace(part)
		if seg == "" {
			return nil, errors.New("empty formatter segment")
		}
		if _, _, isCond := cutTopLevel(seg, '?'); isCond {
			cond, err := parseConditional(seg)
			if err != nil {
				return nil, err
			}
			ph.Cond = cond
			continue
		}
		name, arg, _ := strings.Cut(seg, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty formatter name in segment %q", seg)
		}
		ph.Formatters = append(ph.Formatters, Formatter{Name: name, Arg: strings.TrimSpace(arg)})
	}
	return ph, nil
}

// parseConditional 解析 "eq:0?A:B"。
func parseConditional(expr string) (*Conditional, error) {
	condPart, branches, ok := cutTopLevel(expr, '?')
	if !ok {
		return nil, fmt.Errorf("invalid conditional: %s", expr)
	}
	then, els, ok := cutTopLevel(branches, ':')
	if !ok {
		return nil, fmt.Errorf("invalid conditional: %s", expr)
	}
	op, test, ok := strings.Cut(condPart, ":")
	if !ok {
		return nil, fmt.Errorf("invalid condition: %s", condPart)
	}
	return &Conditional{
		Op:        strings.TrimSpace(op),
		TestValue: strings.TrimSpace(test),
		Then:      strings.TrimSpace(then),
		Else:      strings.TrimSpace(els),
	}, nil
}

// cutTopLevel 在第一个不处于 {} 内的 sep 处切开 s。
func cutTopLevel(s string, sep rune) (before, after string, found bool) {
	depth := 0
	for i, r := range s {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		case r == sep && depth == 0:
			return s[:i], s[i+utf8.RuneLen(sep):], true
		}
	}
	return s, "", false
}

func splitTopLevel(s string, sep rune) []string {
	var parts []string
	for {
		before, after, ok := cutTopLevel(s, sep)
		parts = append(parts, before)
		if !ok {
			return parts
		}
		s = after
	}
}

func valueByPath(args map[string]any, path string) (any, bool) {
	var current any = args
	for _, seg := range strings.Split(path, ".") {
		switch c := current.(type) {
		case map[string]any:
			v, ok := c[seg]
			if !ok {
				return nil, false
			}
			current = v
		default:
			r := reflect.ValueOf(c)
			if r.Kind() == reflect.Ptr {
				r = r.Elem()
			}
			if r.Kind() != reflect.Struct {
				return nil, false
			}
			f := r.FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, seg)
			})
			if !f.IsValid() || !f.CanInterface() {
				return nil, false
			}
			current = f.Interface()
		}
	}
	return current, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", ""), 64)
		return f, err == nil
	}
	return 0, false
}

func compareValues(v any, op, test string) (bool, error) {
	if s, ok := v.(string); ok {
		if op != "eq" {
			return false, fmt.Errorf("unsupported string op: %s", op)
		}
		return s == test, nil
	}

	lv, ok := toFloat(v)
	if !ok {
		return false, fmt.Errorf("unsupported type for compare: %T", v)
	}
	rv, err := strconv.ParseFloat(test, 64)
	if err != nil {
		return false, err
	}
	switch op {
	case "eq":
		return lv == rv, nil
	case "gt":
		return lv > rv, nil
	case "lt":
		return lv < rv, nil
	default:
		return false, fmt.Errorf("unknown op: %s", op)
	}
}

// ValidateTemplate 严格校验模板，供语言文件检查使用：
// 括号必须配对，占位符必须可解析，formatter 必须已注册，条件运算符必须合法。
func ValidateTemplate(tpl string) error {
	if err := checkBraces(tpl); err != nil {
		return err
	}

	runes := []rune(tpl)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '{' {
			continue
		}
		end := matchBrace(runes, i)
		ph, err := parsePlaceholder(string(runes[i+1 : end]))
		if err != nil {
			return err
		}
		i = end

		for _, f := range ph.Formatters {
			if !hasFormatter(f.Name) {
				return fmt.Errorf("unknown formatter: %s", f.Name)
			}
			if f.Name == "number" && f.Arg != "" {
				if _, err := strconv.Atoi(f.Arg); err != nil {
					return fmt.Errorf("invalid precision for number formatter: %q", f.Arg)
				}
			}
		}
		if ph.Cond != nil {
			switch ph.Cond.Op {
			case "eq", "gt", "lt":
			default:
				return fmt.Errorf("unknown conditional operator: %s", ph.Cond.Op)
			}
			if ph.Cond.Then == "" || ph.Cond.Else == "" {
				return errors.New("invalid conditional expression: both branches are required")
			}
		}
	}
	return nil
}

func checkBraces(tpl string) error {
	depth, firstOpen := 0, -1
	for i, r := range []rune(tpl) {
		switch r {
		case '{':
			if depth == 0 {
				firstOpen = i
			}
			depth++
		case '}':
			if depth == 0 {
				return fmt.Errorf("extra closing '}' at position %d", i)
			}
			depth--
		}
	}
	if depth != 0 {
		return fmt.Errorf("unclosed placeholder starting at position %d", firstOpen)
	}
	return nil
}
