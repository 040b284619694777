package main

import "github.com/cyounger/gensudoku/cmd"

func main() {
	cmd.Execute()
}
