// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command todoctl manipulates todos and items from the command line.
// It talks to any todo.Store backend, usually a running todod:
//
//     todoctl --backend http://localhost:3000/ create --title "learn elm" --created-by Foo
//     todoctl --backend http://localhost:3000/ items 1
//
// Results are printed as YAML.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/diffeo/go-todo/backend"
	"github.com/diffeo/go-todo/todo"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

// ctl holds the state shared by all of the subcommands.
type ctl struct {
	Store todo.Store
	Out   io.Writer
}

var app ctl

// Print writes a value to the output as YAML.
func (c *ctl) Print(v interface{}) error {
	bytes, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = c.Out.Write(bytes)
	return err
}

// intArg parses the nth positional argument as an ID.
func intArg(c *cli.Context, n int, name string) (int64, error) {
	if c.NArg() <= n {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	id, err := strconv.ParseInt(c.Args().Get(n), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, c.Args().Get(n))
	}
	return id, nil
}

// todoParams builds params from whichever flags were given.
func todoParams(c *cli.Context) todo.TodoParams {
	params := todo.TodoParams{}
	if c.IsSet("title") {
		params.Title = todo.String(c.String("title"))
	}
	if c.IsSet("created-by") {
		params.CreatedBy = todo.String(c.String("created-by"))
	}
	return params
}

// itemParams builds params from whichever flags were given.
func itemParams(c *cli.Context) (todo.ItemParams, error) {
	params := todo.ItemParams{}
	if c.IsSet("name") {
		params.Name = todo.String(c.String("name"))
	}
	switch {
	case c.Bool("done") && c.Bool("undone"):
		return params, errors.New("--done and --undone conflict")
	case c.Bool("done"):
		params.Done = todo.Bool(true)
	case c.Bool("undone"):
		params.Done = todo.Bool(false)
	}
	if c.IsSet("todo") {
		params.TodoID = todo.ID(c.Int64("todo"))
	}
	return params, nil
}

var todoFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "title",
		Usage: "title of the todo",
	},
	cli.StringFlag{
		Name:  "created-by",
		Usage: "who created the todo",
	},
}

var itemFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "name",
		Usage: "name of the item",
	},
	cli.BoolFlag{
		Name:  "done",
		Usage: "mark the item as done",
	},
	cli.BoolFlag{
		Name:  "undone",
		Usage: "mark the item as not done",
	},
}

var listTodos = cli.Command{
	Name:  "list",
	Usage: "list all todos",
	Action: func(c *cli.Context) error {
		todos, err := app.Store.Todos()
		if err != nil {
			return err
		}
		return app.Print(todos)
	},
}

var showTodo = cli.Command{
	Name:      "show",
	Usage:     "show a single todo",
	ArgsUsage: "id",
	Action: func(c *cli.Context) error {
		id, err := intArg(c, 0, "id")
		if err != nil {
			return err
		}
		record, err := app.Store.Todo(id)
		if err != nil {
			return err
		}
		return app.Print(record)
	},
}

var createTodo = cli.Command{
	Name:  "create",
	Usage: "create a new todo",
	Flags: todoFlags,
	Action: func(c *cli.Context) error {
		record, err := app.Store.CreateTodo(todoParams(c))
		if err != nil {
			return err
		}
		return app.Print(record)
	},
}

var updateTodo = cli.Command{
	Name:      "update",
	Usage:     "change a todo",
	ArgsUsage: "id",
	Flags:     todoFlags,
	Action: func(c *cli.Context) error {
		id, err := intArg(c, 0, "id")
		if err != nil {
			return err
		}
		record, err := app.Store.UpdateTodo(id, todoParams(c))
		if err != nil {
			return err
		}
		return app.Print(record)
	},
}

var destroyTodo = cli.Command{
	Name:      "destroy",
	Usage:     "delete a todo and all of its items",
	ArgsUsage: "id",
	Action: func(c *cli.Context) error {
		id, err := intArg(c, 0, "id")
		if err != nil {
			return err
		}
		return app.Store.DestroyTodo(id)
	},
}

var listItems = cli.Command{
	Name:      "items",
	Usage:     "list the items in a todo",
	ArgsUsage: "todo_id",
	Action: func(c *cli.Context) error {
		todoID, err := intArg(c, 0, "todo_id")
		if err != nil {
			return err
		}
		items, err := app.Store.Items(todoID)
		if err != nil {
			return err
		}
		return app.Print(items)
	},
}

var addItem = cli.Command{
	Name:      "add",
	Usage:     "add an item to a todo",
	ArgsUsage: "todo_id",
	Flags:     itemFlags,
	Action: func(c *cli.Context) error {
		todoID, err := intArg(c, 0, "todo_id")
		if err != nil {
			return err
		}
		params, err := itemParams(c)
		if err != nil {
			return err
		}
		item, err := app.Store.CreateItem(todoID, params)
		if err != nil {
			return err
		}
		return app.Print(item)
	},
}

var updateItem = cli.Command{
	Name:      "check",
	Usage:     "change an item",
	ArgsUsage: "todo_id id",
	Flags: append([]cli.Flag{
		cli.Int64Flag{
			Name:  "todo",
			Usage: "move the item to this todo",
		},
	}, itemFlags...),
	Action: func(c *cli.Context) error {
		todoID, err := intArg(c, 0, "todo_id")
		if err != nil {
			return err
		}
		id, err := intArg(c, 1, "id")
		if err != nil {
			return err
		}
		params, err := itemParams(c)
		if err != nil {
			return err
		}
		item, err := app.Store.UpdateItem(todoID, id, params)
		if err != nil {
			return err
		}
		return app.Print(item)
	},
}

var removeItem = cli.Command{
	Name:      "remove",
	Usage:     "delete an item",
	ArgsUsage: "todo_id id",
	Action: func(c *cli.Context) error {
		todoID, err := intArg(c, 0, "todo_id")
		if err != nil {
			return err
		}
		id, err := intArg(c, 1, "id")
		if err != nil {
			return err
		}
		return app.Store.DestroyItem(todoID, id)
	},
}

// newApp builds the command-line application.  The store is created
// from the --backend flag before any command runs.
func newApp(out io.Writer) *cli.App {
	storage := backend.Backend{Implementation: "http", Address: "//localhost:3000/"}
	a := cli.NewApp()
	a.Name = "todoctl"
	a.Usage = "manage todos and their items"
	a.Writer = out
	a.Flags = []cli.Flag{
		cli.GenericFlag{
			Name:   "backend",
			Value:  &storage,
			Usage:  "impl:[address] of todo backend",
			EnvVar: "TODOCTL_BACKEND",
		},
	}
	a.Commands = []cli.Command{
		listTodos,
		showTodo,
		createTodo,
		updateTodo,
		destroyTodo,
		listItems,
		addItem,
		updateItem,
		removeItem,
		bench,
	}
	a.Before = func(c *cli.Context) (err error) {
		app.Out = out
		app.Store, err = storage.Store()
		return
	}
	return a
}

func main() {
	err := newApp(os.Stdout).Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
