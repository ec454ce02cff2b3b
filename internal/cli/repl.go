package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	noteActivity()
	consumeExpiry() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Users(ctx context.Context) error
	Rates(ctx context.Context, args []string) error
	Convert(ctx context.Context, args []string) error
	Segments(ctx context.Context, args []string) error
	Products(ctx context.Context, args []string) error
	KPI(ctx context.Context) error
	Trend(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the ShopLens CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user and do not count as activity; every accepted command
// re-arms the inactivity watchdog via noteActivity. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current user (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the signed-in user
//	  - users          — list registered accounts
//	  - rates [base]   — exchange rates for a base currency
//	  - convert        — convert an amount between currencies
//	  - segments       — customer segments (domain, city, company, engagement)
//	  - products       — top performers or category rollup
//	  - kpi            — dashboard KPI summary
//	  - trend [cur]    — weekly sales trend, optionally in another currency
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if a.consumeExpiry() {
			printlnFn("Session expired due to inactivity. Please log in again.")
		}

		printlnFn(fmt.Sprintf("lens> %s > ", statusFn()))
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

		handled := true

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, users, rates [base], convert <amount> <from> <to>, segments <kind>, products [top|categories], kpi, trend [currency], logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "users":
			_ = a.Users(ctx)

		case "rates":
			_ = a.Rates(ctx, args)

		case "convert":
			_ = a.Convert(ctx, args)

		case "segments":
			_ = a.Segments(ctx, args)

		case "products":
			_ = a.Products(ctx, args)

		case "kpi":
			_ = a.KPI(ctx)

		case "trend":
			_ = a.Trend(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			handled = false
			printlnFn("Unknown command:", cmd)
		}

		if handled {
			a.noteActivity()
		}
	}
}
