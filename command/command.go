// Package command 提供插件命令执行器的基础实现。
package command

import (
	"sort"
	"strings"
	"sync"

	"github.com/lifei6671/guizhanlib/plugin"
)

// Sender 是命令的发送者，例如玩家或控制台。
type Sender interface {
	Name() string
	SendMessage(msg string)
}

// Command 描述一个已注册的命令。
type Command struct {
	Name        string
	Description string
	Usage       string
	Aliases     []string
}

// Executor 处理命令，返回 false 表示用法错误，由宿主提示 Usage。
type Executor interface {
	OnCommand(sender Sender, cmd *Command, label string, args []string) bool
}

// ExecutorFunc 让普通函数实现 Executor。
type ExecutorFunc func(sender Sender, cmd *Command, label string, args []string) bool

func (f ExecutorFunc) OnCommand(sender Sender, cmd *Command, label string, args []string) bool {
	return f(sender, cmd, label, args)
}

// SubCommand 是子命令的空实现，嵌入后覆盖 OnCommand 即可。
type SubCommand struct {
	plugin  plugin.Plugin
	command *Command
}

func NewSubCommand(p plugin.Plugin, cmd *Command) *SubCommand {
	return &SubCommand{plugin: p, command: cmd}
}

func (s *SubCommand) Plugin() plugin.Plugin { return s.plugin }
func (s *SubCommand) Command() *Command     { return s.command }

func (s *SubCommand) OnCommand(Sender, *Command, string, []string) bool {
	return false
}

// Tree 按第一个参数把命令分发给子命令，名称与别名不区分大小写。
type Tree struct {
	mu     sync.RWMutex
	subs   map[string]Executor
	owners map[string]*Command // 名称或别名当前归属的子命令
	names  map[string]*Command
}

func NewTree() *Tree {
	return &Tree{
		subs:   make(map[string]Executor),
		owners: make(map[string]*Command),
		names:  make(map[string]*Command),
	}
}

// Register 注册子命令，同名或同别名的子命令会被覆盖。
func (t *Tree) Register(cmd *Command, exec Executor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, key := range append([]string{cmd.Name}, cmd.Aliases...) {
		key = strings.ToLower(key)
		t.subs[key] = exec
		t.owners[key] = cmd
	}
	t.names[strings.ToLower(cmd.Name)] = cmd
	// 名称已被其他子命令占用的不再列出
	for key, c := range t.names {
		if t.owners[key] != c {
			delete(t.names, key)
		}
	}
}

// Names 返回已注册子命令的名称（不含别名），按字典序排列。
func (t *Tree) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.names))
	for _, cmd := range t.names {
		out = append(out, cmd.Name)
	}
	sort.Strings(out)
	return out
}

// OnCommand 以 args[0] 选择子命令并传入剩余参数，找不到子命令时返回 false。
func (t *Tree) OnCommand(sender Sender, cmd *Command, label string, args []string) bool {
	if len(args) == 0 {
		return false
	}
	t.mu.RLock()
	exec, ok := t.subs[strings.ToLower(args[0])]
	t.mu.RUnlock()
	if !ok {
		return false
	}
	return exec.OnCommand(sender, cmd, args[0], args[1:])
}
