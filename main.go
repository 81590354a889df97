package main

import "beven/cmd"

func main() {
	cmd.Execute()
}
