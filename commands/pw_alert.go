package commands

type PwAlertCommand struct {
	Analyze AnalyzeCommand `command:"analyze" description:"Score a password and optionally check it against known breaches"`
	Check   CheckCommand   `command:"check" description:"Check newline-separated passwords from STDIN against known breaches"`
	Version VersionCommand `command:"version" description:"Displays pw-alert version" alias:"V"`
}

var PwAlert PwAlertCommand
