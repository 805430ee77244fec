package main

import "github.com/jsphweid/quartal/cmd"

func main() {
	cmd.Execute()
}
