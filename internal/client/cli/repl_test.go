package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Browse(ctx context.Context) error {
	f.calls = append(f.calls, "browse")
	return nil
}
func (f *fakeExec) WatchTitle(ctx context.Context, id string) error {
	f.calls = append(f.calls, "watch")
	f.arg = id
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Plans(ctx context.Context) error {
	f.calls = append(f.calls, "plans")
	return nil
}
func (f *fakeExec) Subscribe(ctx context.Context, id string) error {
	f.calls = append(f.calls, "subscribe")
	f.arg = id
	return nil
}
func (f *fakeExec) Cancel(ctx context.Context) error {
	f.calls = append(f.calls, "cancel")
	return nil
}
func (f *fakeExec) GenerateCode(ctx context.Context) error {
	f.calls = append(f.calls, "gencode")
	return nil
}
func (f *fakeExec) Redeem(ctx context.Context, code string) error {
	f.calls = append(f.calls, "redeem")
	f.arg = code
	return nil
}
func (f *fakeExec) Codes(ctx context.Context) error {
	f.calls = append(f.calls, "codes")
	return nil
}
func (f *fakeExec) UpdatePassword(ctx context.Context) error {
	f.calls = append(f.calls, "passwd")
	return nil
}
func (f *fakeExec) Admin(ctx context.Context) error {
	f.calls = append(f.calls, "admin")
	return nil
}
func (f *fakeExec) Users(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}
func (f *fakeExec) Ping(ctx context.Context) error {
	f.calls = append(f.calls, "ping")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"browse",
		"watch 42",
		"profile",
		"gencode",
		"codes",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "browse", "watch", "profile", "gencode", "codes"}
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

func TestRunREPL_ArgumentsArePassedThrough(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("redeem VTX-1234\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if exec.arg != "VTX-1234" {
		t.Fatalf("argument not passed: %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	// Commands requiring an argument print usage and dispatch nothing.
	input := strings.NewReader("watch\nsubscribe\nredeem\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
