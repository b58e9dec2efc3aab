// Package commands implements the invoke CLI, which runs a single event file
// through the Scale Helper skill exactly as the HTTP endpoint would and
// prints the resulting envelope.
package commands
