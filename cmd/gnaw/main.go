// Copyright © 2025 The gnaw authors

package main

import "github.com/luthersystems/gnaw/cmd"

func main() {
	cmd.Execute()
}
