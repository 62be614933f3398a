package main

import (
	"github.com/SimonPrato11/client-server-project/cmd"
)

func main() {
	cmd.Execute()
}
