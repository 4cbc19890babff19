package entity

import (
	"errors"
	"fmt"

	"github.com/lifei6671/guizhanlib/strutil"
)

// ErrInvalidPandaGene 表示无效的熊猫基因。
var ErrInvalidPandaGene = errors.New("无效的熊猫基因")

// PandaGene 是熊猫基因，取值与服务端的 Panda.Gene 标识一致。
type PandaGene string

const (
	PandaAggressive PandaGene = "AGGRESSIVE"
	PandaBrown      PandaGene = "BROWN"
	PandaLazy       PandaGene = "LAZY"
	PandaNormal     PandaGene = "NORMAL"
	PandaPlayful    PandaGene = "PLAYFUL"
	PandaWeak       PandaGene = "WEAK"
	PandaWorried    PandaGene = "WORRIED"
)

var pandaGenes = []label[PandaGene]{
	{PandaAggressive, "Aggressive", "好斗"},
	{PandaBrown, "Brown", "棕色"},
	{PandaLazy, "Lazy", "懒惰"},
	{PandaNormal, "Normal", "普通"},
	{PandaPlayful, "Playful", "顽皮"},
	{PandaWeak, "Weak", "虚弱"},
	{PandaWorried, "Worried", "发愁"},
}

// PandaGenes 返回所有熊猫基因。
func PandaGenes() []PandaGene {
	return ids(pandaGenes)
}

func (g PandaGene) English() string {
	if l, ok := find(pandaGenes, g); ok {
		return l.english
	}
	return strutil.Humanize(string(g))
}

func (g PandaGene) Chinese() string {
	if l, ok := find(pandaGenes, g); ok {
		return l.chinese
	}
	return strutil.Humanize(string(g))
}

func (g PandaGene) String() string {
	return g.Chinese()
}

// PandaGeneFromID 根据服务端标识（如 "LAZY"）返回熊猫基因。
func PandaGeneFromID(id string) (PandaGene, error) {
	if _, ok := find(pandaGenes, PandaGene(id)); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPandaGene, id)
	}
	return PandaGene(id), nil
}

// PandaGeneFromEnglish 根据英文名称返回熊猫基因。
func PandaGeneFromEnglish(english string) (PandaGene, bool) {
	return fromEnglish(pandaGenes, english)
}

// PandaGeneLabel 返回熊猫基因的中文名称，无法识别时返回可读化的原文。
func PandaGeneLabel(id string) string {
	g, err := PandaGeneFromID(id)
	if err != nil {
		return strutil.Humanize(id)
	}
	return g.Chinese()
}
