package main

import "github.com/PressureTank/idiomatic/backend/cli"

func main() {
	cli.InitAndExecute()
}
