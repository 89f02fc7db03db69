package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string

	errFor string
}

func (f *fakeExec) record(name, arg string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
	if f.errFor == name {
		return errors.New(name + " failed")
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", "")
}
func (f *fakeExec) Login(ctx context.Context) error {
	err := f.record("login", "")
	f.loggedIn = true
	return err
}
func (f *fakeExec) Logout(ctx context.Context) error {
	err := f.record("logout", "")
	f.loggedIn = false
	return err
}
func (f *fakeExec) Refresh(ctx context.Context) error { return f.record("refresh", "") }
func (f *fakeExec) List(ctx context.Context) error    { return f.record("list", "") }
func (f *fakeExec) More(ctx context.Context) error    { return f.record("more", "") }
func (f *fakeExec) Search(ctx context.Context, query string) error {
	return f.record("search", query)
}
func (f *fakeExec) FilterCategory(ctx context.Context, name string) error {
	return f.record("category", name)
}
func (f *fakeExec) FilterAuthor(ctx context.Context, name string) error {
	return f.record("author", name)
}
func (f *fakeExec) Sort(ctx context.Context, field, direction string) error {
	return f.record("sort", field+" "+direction)
}
func (f *fakeExec) ClearFilters(ctx context.Context) error { return f.record("clear", "") }
func (f *fakeExec) Popular(ctx context.Context) error      { return f.record("popular", "") }
func (f *fakeExec) Authors(ctx context.Context) error      { return f.record("authors", "") }
func (f *fakeExec) Read(ctx context.Context, id string) error {
	return f.record("read", id)
}
func (f *fakeExec) Write(ctx context.Context) error { return f.record("write", "") }
func (f *fakeExec) Edit(ctx context.Context, id string) error {
	return f.record("edit", id)
}
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	return f.record("delete", id)
}
func (f *fakeExec) Subscribe(ctx context.Context) error { return f.record("subscribe", "") }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"list",
		"more",
		"search go generics",
		"category technology",
		"sort views desc",
		"clear",
		"read abc123",
		"write",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "list", "more", "search", "category", "sort", "clear", "read", "write"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgsArePassedThrough(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"search hello world",
		"author Jane Doe",
		"read a1",
		"edit a2",
		"delete a3",
		"quit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := map[string]string{
		"search": "hello world",
		"author": "Jane Doe",
		"read":   "a1",
		"edit":   "a2",
		"delete": "a3",
	}
	for i, c := range exec.calls {
		if arg, ok := want[c]; ok && exec.args[i] != arg {
			t.Fatalf("command %s got arg %q, want %q", c, exec.args[i], arg)
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("read\nedit\ndelete\ncategory\nsort\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_HandlerErrorKeepsLoopAlive(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("refresh\nlist\nexit\n")
	exec := &fakeExec{loggedIn: true, errFor: "refresh"}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 2 {
		t.Fatalf("expected refresh and list to both run, got %v", exec.calls)
	}
}
