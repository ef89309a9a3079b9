package main

import "github.com/HakimZ78/devhakim-api/cmd/admin/cmd"

func main() {
	cmd.Execute()
}
