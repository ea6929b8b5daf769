package main

import (
	"os"

	"github.com/matthew1471/condeco-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
