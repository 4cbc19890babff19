// Package entity 提供生物属性（猫的类型、熊猫基因）与中英文名称之间的映射。
package entity

import (
	"errors"
	"fmt"

	"github.com/lifei6671/guizhanlib/strutil"
)

// ErrInvalidCatType 表示无效的猫类型。
var ErrInvalidCatType = errors.New("无效的猫类型")

// CatType 是猫的类型，取值与服务端的 Cat.Type 标识一致。
type CatType string

const (
	CatAllBlack         CatType = "ALL_BLACK"         // 黑猫
	CatBlack            CatType = "BLACK"             // 西服猫
	CatBritishShorthair CatType = "BRITISH_SHORTHAIR" // 英国短毛猫
	CatCalico           CatType = "CALICO"            // 花猫
	CatJellie           CatType = "JELLIE"            // Jellie
	CatPersian          CatType = "PERSIAN"           // 波斯猫
	CatRagdoll          CatType = "RAGDOLL"           // 布偶猫
	CatRed              CatType = "RED"               // 红虎斑猫
	CatSiamese          CatType = "SIAMESE"           // 暹罗猫
	CatTabby            CatType = "TABBY"             // 虎斑猫
	CatWhite            CatType = "WHITE"             // 白猫
)

var catTypes = []label[CatType]{
	{CatAllBlack, "Black", "黑猫"},
	{CatBlack, "Tuxedo", "西服猫"},
	{CatBritishShorthair, "British Shorthair", "英国短毛猫"},
	{CatCalico, "Calico", "花猫"},
	{CatJellie, "Jellie", "Jellie"},
	{CatPersian, "Persian", "波斯猫"},
	{CatRagdoll, "Ragdoll", "布偶猫"},
	{CatRed, "Red", "红虎斑猫"},
	{CatSiamese, "Siamese", "暹罗猫"},
	{CatTabby, "Tabby", "虎斑猫"},
	{CatWhite, "White", "白猫"},
}

// CatTypes 返回所有猫的类型。
func CatTypes() []CatType {
	return ids(catTypes)
}

// English 返回英文名称。
func (t CatType) English() string {
	if l, ok := find(catTypes, t); ok {
		return l.english
	}
	return strutil.Humanize(string(t))
}

// Chinese 返回中文名称。
func (t CatType) Chinese() string {
	if l, ok := find(catTypes, t); ok {
		return l.chinese
	}
	return strutil.Humanize(string(t))
}

func (t CatType) String() string {
	return t.Chinese()
}

// CatTypeFromID 根据服务端标识（如 "ALL_BLACK"）返回猫的类型。
func CatTypeFromID(id string) (CatType, error) {
	if _, ok := find(catTypes, CatType(id)); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCatType, id)
	}
	return CatType(id), nil
}

// CatTypeFromEnglish 根据英文名称返回猫的类型，输入会先经过 strutil.Humanize。
func CatTypeFromEnglish(english string) (CatType, bool) {
	return fromEnglish(catTypes, english)
}

// CatTypeLabel 返回猫的类型的中文名称，无法识别时返回可读化的原文。
func CatTypeLabel(id string) string {
	t, err := CatTypeFromID(id)
	if err != nil {
		return strutil.Humanize(id)
	}
	return t.Chinese()
}
