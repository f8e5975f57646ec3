package main

import "github.com/papapumpkin/strata/cmd"

func main() {
	cmd.Execute()
}
