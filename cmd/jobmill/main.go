package main

import (
	"github.com/jobmill-project/jobmill/internal/cli"
)

func main() {
	cli.Execute()
}
