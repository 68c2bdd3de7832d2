package main

import "github.com/spec-kit/fittrack/cmd/fittrack/cmd"

func main() {
	cmd.Execute()
}
