package bindings_test

import (
	"testing"

	"github.com/xtile-wm/xtile/internal/bindings"
)

func TestTableMatchFindsExactKey(t *testing.T) {
	table := bindings.Table{
		{Key: bindings.Key{Modifiers: 1, Keysym: 'a'}, Action: bindings.ActionFocusNext},
		{Key: bindings.Key{Modifiers: 2, Keysym: 'b'}, Action: bindings.ActionFocusPrev},
	}

	b, ok := table.Match(2, 'b')
	if !ok {
		t.Fatal("expected a match")
	}
	if b.Action != bindings.ActionFocusPrev {
		t.Errorf("expected ActionFocusPrev, got %v", b.Action)
	}
}

func TestTableMatchRequiresExactModifiers(t *testing.T) {
	table := bindings.Table{
		{Key: bindings.Key{Modifiers: 1, Keysym: 'a'}, Action: bindings.ActionFocusNext},
	}

	if _, ok := table.Match(1|2, 'a'); ok {
		t.Error("expected no match when extra modifier bits are set")
	}
}

func TestCommandBuildsCommandArgument(t *testing.T) {
	arg := bindings.Command("xterm", "-e", "tmux")

	if arg.Kind != bindings.ArgCommand {
		t.Errorf("expected ArgCommand, got %v", arg.Kind)
	}
	if len(arg.Command) != 3 || arg.Command[0] != "xterm" {
		t.Errorf("unexpected Command argv: %v", arg.Command)
	}
}

func TestAmountBuildsAmountArgument(t *testing.T) {
	arg := bindings.Amount(-20)

	if arg.Kind != bindings.ArgAmount {
		t.Errorf("expected ArgAmount, got %v", arg.Kind)
	}
	if arg.Amount != -20 {
		t.Errorf("expected Amount -20, got %d", arg.Amount)
	}
}
