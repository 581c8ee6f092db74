package main

import "github.com/geometrycollective/geomproc/cmd"

func main() {
	cmd.Execute()
}
