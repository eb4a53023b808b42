package main

import "sprout/cmd/sprout/root"

func main() {
	root.Execute()
}
