/*
Package ports defines the driven ports (interfaces) consumed by a cmdline Shell.

The line editor that owns the terminal and the store that keeps history
entries are external collaborators: the shell only talks to them through
these interfaces, so they can be swapped for a real terminal, a scripted
editor in tests, or a shared history backend.

# Key Interfaces

  - LineEditor: blocking line reads, edit sessions, history and display settings.
  - EditSession: one resumable, non-blocking line edit driven by readiness.
  - HistoryStore: loads and saves history entries under a key (file path, Redis key).
*/
package ports
