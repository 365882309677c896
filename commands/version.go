package commands

import "fmt"

// overridden at build time with -ldflags "-X github.com/pivotal-cf/pw-alert/commands.version=..."
var version = "dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Println(version)
	return nil
}
