package main

import "github.com/theirongolddev/lifecost/cmd"

func main() {
	cmd.Execute()
}
