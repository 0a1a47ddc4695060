package main

import "github.com/unkn0wn-root/cassmarshal/cmd/cassmarshal/cmd"

func main() {
	cmd.Execute()
}
