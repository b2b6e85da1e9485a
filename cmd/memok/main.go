// Command memok is a personal assistant for contacts and notes.
package main

import "github.com/mesh-intelligence/memok/internal/cli"

func main() {
	cli.Execute()
}
