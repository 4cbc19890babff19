package localization

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lifei6671/guizhanlib/strutil"
)

// FormatterFunc 是占位符中可用的格式化函数。
type FormatterFunc func(input any, arg string) (any, error)

var (
	formatters   = map[string]FormatterFunc{}
	formattersMu sync.RWMutex
)

// RegisterFormatter 注册或覆盖一个格式化函数。
func RegisterFormatter(name string, f FormatterFunc) {
	formattersMu.Lock()
	defer formattersMu.Unlock()
	formatters[name] = f
}

func hasFormatter(name string) bool {
	formattersMu.RLock()
	defer formattersMu.RUnlock()
	_, ok := formatters[name]
	return ok
}

func applyFormatter(v any, name, arg string) (any, error) {
	formattersMu.RLock()
	f, ok := formatters[name]
	formattersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return f(v, arg)
}

func init() {
	RegisterFormatter("upper", func(v any, _ string) (any, error) {
		return strings.ToUpper(fmt.Sprint(v)), nil
	})
	RegisterFormatter("lower", func(v any, _ string) (any, error) {
		return strings.ToLower(fmt.Sprint(v)), nil
	})
	RegisterFormatter("title", func(v any, _ string) (any, error) {
		return cases.Title(language.Und).String(fmt.Sprint(v)), nil
	})
	RegisterFormatter("humanize", func(v any, _ string) (any, error) {
		return strutil.Humanize(fmt.Sprint(v)), nil
	})
	RegisterFormatter("dehumanize", func(v any, _ string) (any, error) {
		return strutil.Dehumanize(fmt.Sprint(v)), nil
	})
	RegisterFormatter("number", formatNumber)
}

// formatNumber 按 arg 指定的小数位数输出，并加上千位分隔符。
func formatNumber(v any, arg string) (any, error) {
	f, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("number formatter requires numeric value, got %T", v)
	}
	precision := 0
	if arg != "" {
		p, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("number formatter: invalid precision %q", arg)
		}
		precision = p
	}
	return addThousandsSep(strconv.FormatFloat(f, 'f', precision, 64)), nil
}

func addThousandsSep(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var sb strings.Builder
	sb.WriteString(sign)
	for i, c := range intPart {
		if i != 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}
