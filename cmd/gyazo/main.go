package main

import "github.com/shotput/gyazo-go/internal/cmd"

func main() {
	cmd.Execute()
}
