package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/lifei6671/guizhanlib/minecraft/entity"
	"github.com/lifei6671/guizhanlib/slimefun"
	"github.com/lifei6671/guizhanlib/strutil"
)

const maxSuggestions = 3

type labelKind struct {
	// candidates 是可识别的英文名称，用于模糊提示
	candidates func() []string
	lookup     func(name string) (string, bool)
}

var labelKinds = map[string]labelKind{
	"cat": {
		candidates: func() []string {
			var out []string
			for _, t := range entity.CatTypes() {
				out = append(out, t.English())
			}
			return out
		},
		lookup: func(name string) (string, bool) {
			if t, err := entity.CatTypeFromID(strutil.Dehumanize(name)); err == nil {
				return t.Chinese(), true
			}
			if t, ok := entity.CatTypeFromEnglish(name); ok {
				return t.Chinese(), true
			}
			return "", false
		},
	},
	"panda": {
		candidates: func() []string {
			var out []string
			for _, g := range entity.PandaGenes() {
				out = append(out, g.English())
			}
			return out
		},
		lookup: func(name string) (string, bool) {
			if g, ok := entity.PandaGeneFromEnglish(name); ok {
				return g.Chinese(), true
			}
			return "", false
		},
	},
	"metal": {
		candidates: func() []string {
			var out []string
			for _, m := range append(append([]slimefun.Metal{}, slimefun.BasicMetals...), slimefun.AdvancedMetals...) {
				out = append(out, m.English)
			}
			return out
		},
		lookup: func(name string) (string, bool) {
			if m, ok := slimefun.BasicMetalFromEnglish(name); ok {
				return m.Chinese, true
			}
			if m, ok := slimefun.AdvancedMetalFromEnglish(name); ok {
				return m.Chinese, true
			}
			return "", false
		},
	},
}

// lookupLabel 返回中文名称；无法识别时返回可读化的原文以及相近的候选名称。
func lookupLabel(kind, name string) (label string, suggestions []string, err error) {
	k, ok := labelKinds[kind]
	if !ok {
		return "", nil, fmt.Errorf("unknown kind %q, expected one of cat, panda, metal", kind)
	}
	if label, ok := k.lookup(name); ok {
		return label, nil, nil
	}

	pattern := strings.ReplaceAll(strutil.Humanize(name), " ", "")
	for _, m := range fuzzy.Find(pattern, k.candidates()) {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return strutil.Humanize(name), suggestions, nil
}

func newLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "label cat|panda|metal <name>",
		Short:     "输出猫的类型、熊猫基因或 Slimefun 金属的中文名称",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"cat", "panda", "metal"},
		RunE: func(cmd *cobra.Command, args []string) error {
			label, suggestions, err := lookupLabel(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			if len(suggestions) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown %s %q, did you mean: %s\n", args[0], args[1], strings.Join(suggestions, ", "))
			}
			return nil
		},
	}
}

func newHumanizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "humanize <text>...",
		Short: "MAGMA_CUBE -> Magma Cube",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), strutil.Humanize(arg))
			}
		},
	}
}

func newDehumanizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dehumanize <text>...",
		Short: "Magma Cube -> MAGMA_CUBE",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), strutil.Dehumanize(arg))
			}
		},
	}
}
