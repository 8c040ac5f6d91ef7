// Package main provides the entry point for the oneliners CLI application.
// oneliners is a tool to store, search, and clipboard-copy single-line shell
// snippets kept in a local file.
package main

import cmd "github.com/toozej/oneliners/cmd/oneliners"

func main() {
	cmd.Execute()
}
