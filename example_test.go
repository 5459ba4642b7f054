package cmdline_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/cmdline"
	"github.com/aretw0/cmdline/pkg/adapters/memory"
	"github.com/aretw0/cmdline/pkg/domain"
)

// ExampleShell drives a shell from a scripted editor instead of a terminal.
func ExampleShell() {
	dir, err := os.MkdirTemp("", "cmdline-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	editor := memory.NewEditor(nil, "greet world", "help")
	sh := cmdline.New(
		cmdline.WithEditor(editor),
		cmdline.WithOutput(os.Stdout),
	)

	err = sh.Register(domain.Descriptor{
		Name:    "greet",
		Options: "<name>",
		Help:    "Say hello",
		Command: domain.CommandFunc(func(_ context.Context, args []string) error {
			if len(args) != 2 {
				return domain.ErrInvalidArgs
			}
			fmt.Printf("hello, %s\n", args[1])
			return nil
		}),
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := sh.Init(ctx, &domain.InitOptions{HistoryPath: filepath.Join(dir, "history.txt")}); err != nil {
		log.Fatal(err)
	}
	defer sh.Close()

	for {
		if err := sh.Run(ctx); cmdline.ShouldExit(err) {
			break
		}
	}

	// Output:
	// hello, world
	// greet | Say hello
	// help | Show the list of commands
	// historylen | Set the number of history entries kept
	// mask | Hide typed characters
}
