package main

import "nathanbeddoewebdev/cloudpulse/cmd"

func main() {
	cmd.Execute()
}
