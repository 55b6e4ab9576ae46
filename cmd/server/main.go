package main

import (
	"github.com/osa911/formmailer/internal/cli"
)

func main() {
	cli.Execute()
}
