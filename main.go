package main

import "github.com/webwinghq/webwing/cmd"

func main() {
	cmd.Execute()
}
