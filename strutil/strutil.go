// Package strutil 提供枚举标识与可读文本之间的互相转换。
package strutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Humanize 将 "STRinG_FirSt" 这类标识转换为 "String First"。
// 下划线与空格都视为分隔符，每个片段首字母大写，其余小写。
func Humanize(s string) string {
	// Caser 带状态，不能跨 goroutine 共享
	title := cases.Title(language.Und)
	s = strings.ReplaceAll(cases.Lower(language.Und).String(s), " ", "_")
	segments := strings.Split(s, "_")
	for i, seg := range segments {
		segments[i] = title.String(seg)
	}
	return strings.Join(segments, " ")
}

// Dehumanize 将 "Magma Cube" 这类文本转换为 "MAGMA_CUBE"。
func Dehumanize(s string) string {
	s = cases.Upper(language.Und).String(s)
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
