package main

import "github.com/moyu-x/dupe-hunter/cmd"

func main() {
	cmd.Execute()
}
