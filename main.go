package main

import "chr-catalog/cmd"

func main() {
	cmd.Execute()
}
