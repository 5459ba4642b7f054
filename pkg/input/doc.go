/*
Package input acquires one line of user input per call.

Two strategies share the Strategy interface and are chosen once, when the
shell is initialized:

  - Sync blocks in the line editor until a line is submitted or input ends.
  - Async never blocks longer than its poll timeout. Each Poll advances an
    explicit edit state machine by at most one step, so a host loop can
    interleave its own work between keystrokes.

The async state machine:

	Uninitialized --first poll--> Editing --line--> LineReady --> Uninitialized
	                                 |  ^
	                                 +--+ timeout / more input needed (ErrInProgress)
	Editing --end of input--> ErrProcessCompleted
	Editing --input fault--> ErrTerminated

LineReady is passed through within the Poll that returns the line, so
Async.Phase only ever reports Uninitialized or Editing.

Neither strategy is safe for concurrent use.
*/
package input
