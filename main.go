package main

import "github.com/bystrodel/backend/cmd"

func main() {
	cmd.Execute()
}
