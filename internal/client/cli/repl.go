package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophtodo/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
// The real App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	Done(ctx context.Context, args []string) error
	Undo(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL reads one command per line from in and dispatches it to a.
// The loop ends on EOF or when the user types "exit" or "quit".
//
//	Not logged in: help, register, login, exit | quit
//	Logged in:     help, (l)ist, add [text], done <id>, undo <id>,
//	               rename <id> [text], delete <id>, logout, exit | quit
//
// Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("todo%s> ", withSpace(statusFn())))

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add [text], done <id>, undo <id>, rename <id> [text], delete <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "l", "list", "add", "done", "undo", "rename", "delete":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			cmdErr = dispatchTask(ctx, a, cmd, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describe(cmdErr))
		}
	}
}

func dispatchTask(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "add":
		return a.Add(ctx, args)
	case "done":
		return a.Done(ctx, args)
	case "undo":
		return a.Undo(ctx, args)
	case "rename":
		return a.Rename(ctx, args)
	case "delete":
		return a.Delete(ctx, args)
	}
	return a.List(ctx)
}

func describe(err error) string {
	if errors.Is(err, client.ErrUnavailable) {
		return "server unavailable, try again later"
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

func withSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
