// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/diffeo/go-todo/todo"
	"github.com/urfave/cli"
)

// runConcurrently calls runner from concurrency goroutines and waits
// for all of them to finish.  concurrency must be positive.
func runConcurrently(concurrency int, runner func()) {
	wg := sync.WaitGroup{}
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			runner()
		}()
	}
	wg.Wait()
}

// benchResult summarizes a benchmark run.
type benchResult struct {
	Todos    int64         `yaml:"todos"`
	Items    int64         `yaml:"items"`
	Errors   int64         `yaml:"errors"`
	Duration time.Duration `yaml:"duration"`
}

var bench = cli.Command{
	Name:  "bench",
	Usage: "create many todos and items as a load test",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "count",
			Value: 100,
			Usage: "number of todos to create",
		},
		cli.IntFlag{
			Name:  "items",
			Value: 5,
			Usage: "number of items to create in each todo",
		},
		cli.IntFlag{
			Name:  "concurrency",
			Value: runtime.NumCPU(),
			Usage: "run this many clients in parallel",
		},
	},
	Action: func(c *cli.Context) error {
		count := c.Int("count")
		perTodo := c.Int("items")
		concurrency := c.Int("concurrency")
		if concurrency < 1 {
			return fmt.Errorf("invalid concurrency %d", concurrency)
		}
		numbers := make(chan int)
		go func() {
			for i := 1; i <= count; i++ {
				numbers <- i
			}
			close(numbers)
		}()

		var lock sync.Mutex
		result := benchResult{}
		tally := func(todos, items, errors int64) {
			lock.Lock()
			result.Todos += todos
			result.Items += items
			result.Errors += errors
			lock.Unlock()
		}

		start := time.Now()
		runConcurrently(concurrency, func() {
			for n := range numbers {
				record, err := app.Store.CreateTodo(todo.TodoParams{
					Title:     todo.String(fmt.Sprintf("bench %d", n)),
					CreatedBy: todo.String("todoctl"),
				})
				if err != nil {
					tally(0, 0, 1)
					continue
				}
				tally(1, 0, 0)
				for i := 1; i <= perTodo; i++ {
					_, err = app.Store.CreateItem(record.ID, todo.ItemParams{
						Name: todo.String(fmt.Sprintf("item %d", i)),
					})
					if err != nil {
						tally(0, 0, 1)
					} else {
						tally(0, 1, 0)
					}
				}
			}
		})
		result.Duration = time.Since(start)
		return app.Print(result)
	},
}
