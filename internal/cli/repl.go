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
	navigateCmd(name string) bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Confirm(ctx context.Context) error
	Logout(ctx context.Context) error

	List(ctx context.Context, term string) error
	Select(ctx context.Context, args []string) error
	SelectAll(ctx context.Context) error
	ClearSelection(ctx context.Context) error
	Delete(ctx context.Context) error
	Export(ctx context.Context) error

	Add(ctx context.Context) error

	Upload(ctx context.Context, path string) error
	Files(ctx context.Context) error
	SelectFile(ctx context.Context, args []string) error
	DeleteFiles(ctx context.Context) error
	Items(ctx context.Context) error
	SelectItem(ctx context.Context, args []string) error
	DeleteItems(ctx context.Context) error
	ClearCatalog(ctx context.Context) error

	Stats(ctx context.Context) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	ToggleNotifications(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the inventory CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account (pending confirmation)
//	  - confirm        — confirm a pending account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help                     — show available commands
//	  - welcome | profile | stats | registry | add | import — switch view
//	  - list [term]              — list records, optionally filtered
//	  - select <n...> | selectall | clearsel
//	  - delete                   — delete selected records (with confirmation)
//	  - export                   — write the export spreadsheet
//	  - upload <file.xlsx>       — import a catalog spreadsheet
//	  - files                    — list imported files, selfile / delfiles / clearcat
//	  - passwd | notify | editprofile | delacc
//	  - logout, exit | quit
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("inv> %s > ", statusFn()))
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

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, confirm, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "confirm":
				_ = a.Confirm(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		if a.navigateCmd(cmd) {
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Views: welcome, profile, stats, registry, add, import")
			printlnFn("Commands: (l)ist [term], select <n...>, selectall, clearsel, delete, export,")
			printlnFn("          addrec, upload <file>, files, selfile <n...>, delfiles,")
			printlnFn("          items, selitem <n...>, delitems, clearcat,")
			printlnFn("          stats, profile, editprofile, passwd, notify, delacc, logout, exit")

		case "l", "list":
			_ = a.List(ctx, strings.Join(args, " "))

		case "select":
			_ = a.Select(ctx, args)

		case "selectall":
			_ = a.SelectAll(ctx)

		case "clearsel":
			_ = a.ClearSelection(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "export":
			_ = a.Export(ctx)

		case "addrec":
			_ = a.Add(ctx)

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <file.xlsx>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "files":
			_ = a.Files(ctx)

		case "selfile":
			_ = a.SelectFile(ctx, args)

		case "delfiles":
			_ = a.DeleteFiles(ctx)

		case "items":
			_ = a.Items(ctx)

		case "selitem":
			_ = a.SelectItem(ctx, args)

		case "delitems":
			_ = a.DeleteItems(ctx)

		case "clearcat":
			_ = a.ClearCatalog(ctx)

		case "statinfo":
			_ = a.Stats(ctx)

		case "whoami":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "notify":
			_ = a.ToggleNotifications(ctx)

		case "delacc":
			_ = a.DeleteAccount(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
