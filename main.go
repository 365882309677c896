package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/pw-alert/commands"
)

func main() {
	parser := flags.NewParser(&commands.PwAlert, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
