package main

import "mpctui/cmd"

func main() {
	cmd.Execute()
}
