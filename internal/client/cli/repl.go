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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	Setup(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Violations(ctx context.Context, args []string) error
	ViolationStats(ctx context.Context) error
	Resolve(ctx context.Context, args []string) error
	RenameViolation(ctx context.Context, args []string) error
	BatchRename(ctx context.Context, args []string) error
	DeleteViolation(ctx context.Context, args []string) error
	ClearViolations(ctx context.Context, args []string) error
	CreateProduct(ctx context.Context, args []string) error
	Scan(ctx context.Context, args []string) error
	Exclusions(ctx context.Context, args []string) error
	Products(ctx context.Context, args []string) error
	Tips(ctx context.Context, args []string) error
	Favorites(ctx context.Context, args []string) error
	Scraps(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
	Locale(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Command handlers return errors for the REPL to print; the loop itself
// stays resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shelfhub %s> ", statusFn()))
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

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, products, tips, favorites, scraps, violations,")
				printlnFn("  vstats, resolve, rename, batchrename, rmviolation, clearviolations,")
				printlnFn("  createproduct, scan, exclusions, settings, passwd, theme, locale, logout, exit")
			} else {
				printlnFn("Available commands: login, register, setup, exit")
			}

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "register":
			err = a.Register(ctx)

		case "setup":
			err = a.Setup(ctx)

		case "passwd":
			err = a.ChangePassword(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "v", "violations":
			err = a.Violations(ctx, args)

		case "vstats":
			err = a.ViolationStats(ctx)

		case "resolve":
			err = a.Resolve(ctx, args)

		case "rename":
			err = a.RenameViolation(ctx, args)

		case "batchrename":
			err = a.BatchRename(ctx, args)

		case "rmviolation":
			err = a.DeleteViolation(ctx, args)

		case "clearviolations":
			err = a.ClearViolations(ctx, args)

		case "createproduct":
			err = a.CreateProduct(ctx, args)

		case "scan":
			err = a.Scan(ctx, args)

		case "exclusions":
			err = a.Exclusions(ctx, args)

		case "p", "products":
			err = a.Products(ctx, args)

		case "tips":
			err = a.Tips(ctx, args)

		case "favorites", "fav":
			err = a.Favorites(ctx, args)

		case "scraps":
			err = a.Scraps(ctx, args)

		case "settings":
			err = a.Settings(ctx, args)

		case "theme":
			err = a.Theme(ctx, args)

		case "locale":
			err = a.Locale(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err.Error())
		}
	}
}
