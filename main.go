package main

import "github.com/jsphweid/modalchords/cmd"

func main() {
	cmd.Execute()
}
