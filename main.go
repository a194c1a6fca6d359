package main

import "github.com/ichaly/gqlcf/cmd"

func main() {
	cmd.Execute()
}
