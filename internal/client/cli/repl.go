package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Browse(ctx context.Context) error
	WatchTitle(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	Plans(ctx context.Context) error
	Subscribe(ctx context.Context, id string) error
	Cancel(ctx context.Context) error
	GenerateCode(ctx context.Context) error
	Redeem(ctx context.Context, code string) error
	Codes(ctx context.Context) error
	UpdatePassword(ctx context.Context) error
	Admin(ctx context.Context) error
	Users(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the VortexTV CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vtv %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: browse, watch <id>, profile, plans, subscribe <id>, cancel, gencode, redeem <code>, codes, passwd, admin, users, whoami, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "browse":
			_ = a.Browse(ctx)

		case "watch":
			if len(args) == 0 {
				printlnFn("Usage: watch <id>")
				continue
			}
			_ = a.WatchTitle(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "plans":
			_ = a.Plans(ctx)

		case "subscribe":
			if len(args) == 0 {
				printlnFn("Usage: subscribe <plan-id>")
				continue
			}
			_ = a.Subscribe(ctx, args[0])

		case "cancel":
			_ = a.Cancel(ctx)

		case "gencode":
			_ = a.GenerateCode(ctx)

		case "redeem":
			if len(args) == 0 {
				printlnFn("Usage: redeem <code>")
				continue
			}
			_ = a.Redeem(ctx, args[0])

		case "codes":
			_ = a.Codes(ctx)

		case "passwd":
			_ = a.UpdatePassword(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "users":
			_ = a.Users(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
