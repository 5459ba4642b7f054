/*
Package cmdline is an embeddable command shell for interactive programs.

The host registers named commands, initializes the shell once and then calls
Run in a loop. Each call reads at most one line, splits it on spaces and hands
the tokens to the command named by the first one.

# Concept

A Shell ties four parts together:

  - a bounded Registry of command descriptors (pkg/registry)
  - a tokenizer with line and token limits (pkg/tokenize)
  - a Dispatcher that reports unknown commands and usage errors (pkg/dispatch)
  - an input Strategy that either blocks for a line or polls an edit session
    without blocking (pkg/input)

Terminal handling lives behind ports.LineEditor. The default editor is built
on golang.org/x/term; tests use the scripted editor from pkg/adapters/memory.

# Usage

	sh := cmdline.New()
	_ = sh.Register(domain.Descriptor{
		Name:    "status",
		Help:    "Print the status",
		Command: domain.CommandFunc(func(ctx context.Context, args []string) error {
			fmt.Println("ok")
			return nil
		}),
	})

	if err := sh.Init(ctx, &domain.InitOptions{HistoryPath: "/tmp/history.txt"}); err != nil {
		log.Fatal(err)
	}
	defer sh.Close()

	for {
		err := sh.Run(ctx)
		if errors.Is(err, domain.ErrProcessCompleted) || errors.Is(err, domain.ErrTerminated) {
			break
		}
	}

Run returns domain.ErrInProgress while an asynchronous read is still being
typed. End of input and input faults are returned, never turned into a process
exit, so the host decides how to shut down.

A Shell is not safe for concurrent use.
*/
package cmdline
