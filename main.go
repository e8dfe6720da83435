package main

import "github.com/gostructural/frame2d/cmd"

func main() {
	cmd.Execute()
}
