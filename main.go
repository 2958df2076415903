package main

import "github.com/mj1618/zwm/cmd"

func main() {
	cmd.Execute()
}
