package localization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playerInfo struct {
	Name  string
	Level int
}

func TestParsePlaceholder(t *testing.T) {
	t.Run("ParsePlaceholder_Success", func(t *testing.T) {
		ph, err := parsePlaceholder("player.name | upper")
		require.NoError(t, err)
		assert.Equal(t, "player.name", ph.Path)
		assert.Equal(t, []Formatter{{Name: "upper"}}, ph.Formatters)
	})
	t.Run("ParsePlaceholder_Conditional", func(t *testing.T) {
		ph, err := parsePlaceholder("count | eq:0?没有物品:{count} 个物品")
		require.NoError(t, err)
		require.NotNil(t, ph.Cond)
		assert.Equal(t, "eq", ph.Cond.Op)
		assert.Equal(t, "0", ph.Cond.TestValue)
		assert.Equal(t, "没有物品", ph.Cond.Then)
		assert.Equal(t, "{count} 个物品", ph.Cond.Else)
	})
	t.Run("ParsePlaceholder_Fail", func(t *testing.T) {
		for _, expr := range []string{"", "  ", "name |", "| upper", "n | eq?x"} {
			_, err := parsePlaceholder(expr)
			assert.Error(t, err, expr)
		}
	})
}

func TestRenderTemplate(t *testing.T) {
	args := map[string]any{
		"player": &playerInfo{Name: "Steve", Level: 12},
		"cat":    "ALL_BLACK",
		"count":  0,
		"coins":  1234567.891,
	}
	cases := map[string]string{
		"{player.name}，你好":              "Steve，你好",
		"等级 {player.level | number}":    "等级 12",
		"{cat | humanize}":              "All Black",
		"{cat | humanize | dehumanize}": "ALL_BLACK",
		"{count | eq:0?空:{count} 个}":    "空",
		"{coins | number:2}":            "1,234,567.89",
		"{player.level | gt:10?高:低}":    "高",
		"未闭合 {player.name":              "未闭合 {player.name",
		"{ | upper}":                    "{ | upper}",
		"纯文本":                           "纯文本",
	}
	for tpl, want := range cases {
		t.Run(tpl, func(t *testing.T) {
			got, err := RenderTemplate(tpl, args)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRenderTemplate_NestedBranch(t *testing.T) {
	tpl := "{n | gt:1?{n | number:2} 个金币:{n | eq:1?一:零} 个金币}"

	got, err := RenderTemplate(tpl, map[string]any{"n": 1234.5})
	require.NoError(t, err)
	assert.Equal(t, "1,234.50 个金币", got)

	got, err = RenderTemplate(tpl, map[string]any{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, "一 个金币", got)

	ph, err := parsePlaceholder("n | upper | gt:1?{n | number:2}:one")
	require.NoError(t, err)
	assert.Equal(t, []Formatter{{Name: "upper"}}, ph.Formatters)
	assert.Equal(t, "{n | number:2}", ph.Cond.Then)
	assert.Equal(t, "one", ph.Cond.Else)
}

func TestRenderTemplate_Fail(t *testing.T) {
	_, err := RenderTemplate("{missing}", nil)
	assert.Error(t, err)
	_, err = RenderTemplate("{name | shout}", map[string]any{"name": "x"})
	assert.Error(t, err)
	_, err = RenderTemplate("{name | number}", map[string]any{"name": "abc"})
	assert.Error(t, err)
}

func TestRegisterFormatter(t *testing.T) {
	RegisterFormatter("color", func(v any, arg string) (any, error) {
		return "§" + arg + v.(string), nil
	})
	got, err := RenderTemplate("{name | color:a}", map[string]any{"name": "Guizhan"})
	require.NoError(t, err)
	assert.Equal(t, "§aGuizhan", got)
	assert.NoError(t, ValidateTemplate("{name | color:a}"))
}

func TestValidateTemplate(t *testing.T) {
	valid := []string{
		"纯文本",
		"{name}",
		"{n | number:2}",
		"{count | eq:0?无:{count} 个}",
		"{n | gt:1?{n | number:2}:one}",
	}
	for _, tpl := range valid {
		assert.NoError(t, ValidateTemplate(tpl), tpl)
	}

	invalid := []string{
		"{name",
		"name}",
		"{}",
		"{name | shout}",
		"{n | number:x}",
		"{n | ne:0?a:b}",
		"{n | eq:0?:b}",
	}
	for _, tpl := range invalid {
		assert.Error(t, ValidateTemplate(tpl), tpl)
	}
}
