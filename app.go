package main

import "github.com/masmgr/whatsnew-go/cmd"

func main() {
	cmd.Run()
}
