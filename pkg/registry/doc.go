/*
Package registry holds the commands a shell can dispatch to.

The registry is an append-only arena with a fixed capacity: descriptors are
kept in registration order, names are unique (exact, case-sensitive) and a
full registry rejects further registrations instead of growing. It also
answers the completion and hint queries the line editor issues while the
user types.
*/
package registry
