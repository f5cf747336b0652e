package main

import "github.com/nikogura/interview-coach/cmd"

func main() {
	cmd.Execute()
}
