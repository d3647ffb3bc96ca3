package main

import "github.com/cinestat/cinestat-cli/cmd"

func main() {
	cmd.Execute()
}
