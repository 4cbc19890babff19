// Package slimefun 提供 Slimefun 金属名称的中文翻译。
package slimefun

import "github.com/lifei6671/guizhanlib/strutil"

// Metal 是一种金属的中英文名称。
type Metal struct {
	English string
	Chinese string
}

func (m Metal) String() string {
	return m.Chinese
}

// BasicMetals 是 Slimefun 的基础金属。
var BasicMetals = []Metal{
	{"Iron", "铁"},
	{"Gold", "金"},
	{"Copper", "铜"},
	{"Tin", "锡"},
	{"Silver", "银"},
	{"Aluminum", "铝"},
	{"Lead", "铅"},
	{"Zinc", "锌"},
	{"Magnesium", "镁"},
}

// AdvancedMetals 是 Slimefun 的合金。
var AdvancedMetals = []Metal{
	{"Steel", "钢"},
	{"Bronze", "青铜"},
	{"Duralumin", "硬铝"},
	{"Billon", "银铜合金"},
	{"Brass", "黄铜"},
	{"Aluminum Brass", "铝黄铜"},
	{"Aluminum Bronze", "铝青铜"},
	{"Corinthian Bronze", "科林斯青铜"},
	{"Solder", "焊锡"},
	{"Damascus Steel", "大马士革钢"},
	{"Hardened Metal", "硬化金属"},
	{"Reinforced Alloy", "强化合金"},
	{"Ferrosilicon", "硅铁"},
	{"Gilded Iron", "镀金铁"},
	{"Redstone Alloy", "红石合金"},
	{"Nickel", "镍"},
	{"Cobalt", "钴"},
}

func fromEnglish(table []Metal, english string) (Metal, bool) {
	humanized := strutil.Humanize(english)
	for _, m := range table {
		if m.English == humanized {
			return m, true
		}
	}
	return Metal{}, false
}

// BasicMetalFromEnglish 根据英文名称查找基础金属。
func BasicMetalFromEnglish(english string) (Metal, bool) {
	return fromEnglish(BasicMetals, english)
}

// AdvancedMetalFromEnglish 根据英文名称查找合金。
func AdvancedMetalFromEnglish(english string) (Metal, bool) {
	return fromEnglish(AdvancedMetals, english)
}

// MetalLabel 返回金属的中文名称，依次匹配基础金属与合金，都不匹配时返回可读化的原文。
func MetalLabel(name string) string {
	if m, ok := BasicMetalFromEnglish(name); ok {
		return m.String()
	}
	if m, ok := AdvancedMetalFromEnglish(name); ok {
		return m.String()
	}
	return strutil.Humanize(name)
}
