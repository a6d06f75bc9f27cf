// Command gibberlink is the command-line front end for the gibberlink-tx
// acoustic codec. It validates transport parameters, locates (or builds) the
// codec binary, runs it, and surfaces the outcome, along with small utility
// commands for protocols, invocation history, status, and configuration.
package main
