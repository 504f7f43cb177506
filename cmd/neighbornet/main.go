package main

import "neighbornet/internal/cmd"

func main() {
	cmd.Run()
}
