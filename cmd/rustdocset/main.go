package main

import "rustdocset/cmd/rustdocset/cmd"

func main() {
	cmd.Execute()
}
