// Package solve registers every daily puzzle behind a uniform interface so
// the CLI can dispatch on a day number.
package solve
