package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifei6671/guizhanlib/plugin"
)

type consoleSender struct {
	messages []string
}

func (c *consoleSender) Name() string           { return "CONSOLE" }
func (c *consoleSender) SendMessage(msg string) { c.messages = append(c.messages, msg) }

func TestSubCommand(t *testing.T) {
	p := plugin.New("Guizhan", t.TempDir(), nil)
	cmd := &Command{Name: "guizhan"}
	sub := NewSubCommand(p, cmd)

	assert.Same(t, cmd, sub.Command())
	assert.Equal(t, "Guizhan", sub.Plugin().Name())
	assert.False(t, sub.OnCommand(&consoleSender{}, cmd, "guizhan", []string{"help"}))
}

func TestTree(t *testing.T) {
	root := &Command{Name: "guizhan"}
	tree := NewTree()
	sender := &consoleSender{}

	var gotLabel string
	var gotArgs []string
	tree.Register(&Command{Name: "reload", Aliases: []string{"rl"}}, ExecutorFunc(
		func(s Sender, _ *Command, label string, args []string) bool {
			gotLabel, gotArgs = label, args
			s.SendMessage("reloaded")
			return true
		}))
	tree.Register(&Command{Name: "help"}, NewSubCommand(nil, root))

	t.Run("Tree_Dispatch", func(t *testing.T) {
		assert.True(t, tree.OnCommand(sender, root, "guizhan", []string{"RL", "lang"}))
		assert.Equal(t, "RL", gotLabel)
		assert.Equal(t, []string{"lang"}, gotArgs)
		assert.Equal(t, []string{"reloaded"}, sender.messages)
	})
	t.Run("Tree_Unknown", func(t *testing.T) {
		assert.False(t, tree.OnCommand(sender, root, "guizhan", []string{"nope"}))
		assert.False(t, tree.OnCommand(sender, root, "guizhan", nil))
		assert.False(t, tree.OnCommand(sender, root, "guizhan", []string{"help"}))
	})
	t.Run("Tree_Names", func(t *testing.T) {
		assert.Equal(t, []string{"help", "reload"}, tree.Names())
	})
}

func TestTree_Overwrite(t *testing.T) {
	root := &Command{Name: "guizhan"}
	tree := NewTree()
	var called string
	exec := func(name string) Executor {
		return ExecutorFunc(func(Sender, *Command, string, []string) bool {
			called = name
			return true
		})
	}

	tree.Register(&Command{Name: "reload"}, exec("reload"))
	tree.Register(&Command{Name: "info", Aliases: []string{"i"}}, exec("info"))
	tree.Register(&Command{Name: "lang", Aliases: []string{"RELOAD"}}, exec("lang"))

	assert.Equal(t, []string{"info", "lang"}, tree.Names())
	assert.True(t, tree.OnCommand(&consoleSender{}, root, "guizhan", []string{"reload"}))
	assert.Equal(t, "lang", called)
	assert.True(t, tree.OnCommand(&consoleSender{}, root, "guizhan", []string{"I"}))
	assert.Equal(t, "info", called)
}
