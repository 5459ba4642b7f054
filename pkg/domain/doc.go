/*
Package domain contains the core types shared by every cmdline component.

It defines the command capability and its registration record, the options
consumed once by Shell.Init, the fixed capacity limits and the error kinds
reported across package boundaries. This package is kept free of I/O so that
the registry, tokenizer and dispatcher can depend on it without pulling in a
terminal or a history store.

# Key Entities

  - Command: the capability a registered command implements (Execute).
  - Descriptor: the immutable registration record (name, options hint, help, command).
  - InitOptions / AsyncConfig: the one-shot configuration of a Shell.
  - Error kinds: sentinel errors tested with errors.Is, plus Code for hosts
    that need a numeric status.
*/
package domain
