package main

import "beamscatter/cmd"

func main() {
	cmd.Execute()
}
