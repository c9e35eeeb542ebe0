package main

import "PrimitiveBoard/cmd"

func main() {
	cmd.Execute()
}
