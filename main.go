package main

import "github.com/weekbudget/backend/cmd"

func main() {
	cmd.Execute()
}
