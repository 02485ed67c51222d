package main

import "skin-catalog/cmd"

func main() {
	cmd.Execute()
}
