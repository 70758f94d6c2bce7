package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophtodo/internal/client/client"
	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

var errUsage = errors.New("usage")

type usageError string

func (e usageError) Error() string { return "usage: " + string(e) }
func (e usageError) Is(target error) bool { return target == errUsage }

func (a *App) List(ctx context.Context) error {
	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks")
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintln(a.out, formatTask(t))
	}
	return nil
}

// Add creates a task from args, prompting for the text when none is given.
func (a *App) Add(ctx context.Context, args []string) error {
	text, err := a.textArg(args, "Enter task")
	if err != nil {
		return err
	}

	task, err := a.api.CreateTask(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Added", formatTask(*task))
	return nil
}

func (a *App) Done(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, args, true, "done <id>")
}

func (a *App) Undo(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, args, false, "undo <id>")
}

func (a *App) setCompleted(ctx context.Context, args []string, completed bool, usage string) error {
	id, err := parseID(args, usage)
	if err != nil {
		return err
	}

	task, err := a.api.UpdateTask(ctx, id, client.TaskUpdate{Completed: &completed})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, formatTask(*task))
	return nil
}

func (a *App) Rename(ctx context.Context, args []string) error {
	id, err := parseID(args, "rename <id> [text]")
	if err != nil {
		return err
	}
	text, err := a.textArg(args[1:], "Enter new text")
	if err != nil {
		return err
	}

	task, err := a.api.UpdateTask(ctx, id, client.TaskUpdate{Task: &text})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, formatTask(*task))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete <id>")
	if err != nil {
		return err
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted task %d\n", id)
	return nil
}

func (a *App) textArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, usageError(usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError(usage)
	}
	return id, nil
}

func formatTask(t models.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("%4d [%s] %s", t.ID, mark, t.Task)
}
