package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pw-alert/breach"
	"github.com/pivotal-cf/pw-alert/strength"
)

type AnalyzeCommand struct {
	Password    string `short:"p" long:"password" description:"password to analyze; read from STDIN when omitted" value-name:"PASSWORD"`
	CheckBreach bool   `short:"b" long:"check-breach" description:"also look the password up in known breaches"`
	JSON        bool   `long:"json" description:"print the result as JSON"`

	BreachOptions
}

type breachReport struct {
	Status      string          `json:"status"`
	Pwned       bool            `json:"pwned"`
	Occurrences int64           `json:"occurrences"`
	Severity    breach.Severity `json:"severity,omitempty"`
	Error       string          `json:"error,omitempty"`
}

const (
	statusPwned   = "pwned"
	statusClean   = "clean"
	statusUnknown = "unknown"
)

type analyzeReport struct {
	Analysis strength.Result `json:"analysis"`
	Breach   *breachReport   `json:"breach,omitempty"`
}

func (command *AnalyzeCommand) Execute(args []string) error {
	logger, cfg, err := command.setup("analyze")
	if err != nil {
		return err
	}

	candidate := command.Password
	if candidate == "" {
		candidate, err = readCandidate(os.Stdin)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var pending <-chan breach.Result
	if command.CheckBreach && candidate != "" {
		pending = buildBreachClient(cfg).LookupAsync(ctx, logger, candidate)
	}

	report := analyzeReport{
		Analysis: strength.Analyze(candidate),
	}

	if !command.JSON {
		printAnalysis(os.Stdout, report.Analysis)
	}

	if pending != nil {
		report.Breach = awaitBreach(ctx, logger, pending)

		if report.Breach.Pwned {
			report.Analysis = strength.AnalyzeWithBreach(candidate, true)
		}
	}

	if command.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	} else if report.Breach != nil {
		printBreach(os.Stdout, report)
	}

	if report.Breach != nil {
		switch report.Breach.Status {
		case statusPwned:
			os.Exit(3)
		case statusUnknown:
			return errors.New("unable to determine breach status: " + report.Breach.Error)
		}
	}

	return nil
}

func awaitBreach(ctx context.Context, logger lager.Logger, pending <-chan breach.Result) *breachReport {
	var result breach.Result

	select {
	case result = <-pending:
	case <-ctx.Done():
		result = breach.Result{Err: ctx.Err()}
	}

	if result.Err != nil {
		logger.Error("breach-check-failed", result.Err)
		return &breachReport{
			Status: statusUnknown,
			Error:  result.Err.Error(),
		}
	}

	if !result.Info.IsPwned {
		return &breachReport{Status: statusClean}
	}

	return &breachReport{
		Status:      statusPwned,
		Pwned:       true,
		Occurrences: result.Info.OccurrenceCount,
		Severity:    result.Info.Severity(),
	}
}

func printAnalysis(w io.Writer, result strength.Result) {
	fmt.Fprintf(w, "Strength: %s\n", colorCategory(result.Category))
	fmt.Fprintf(w, "Score: %d/100\n", result.Score)

	if result.Category == strength.NotAnalyzed {
		return
	}

	fmt.Fprintf(w, "Length: %d characters\n", result.Length)
	fmt.Fprintf(w, "Character types: %d\n", result.CharacterClassCount)
	fmt.Fprintf(w, "Entropy: %.1f bits\n", result.EntropyBits)

	if result.HasCommonPatterns {
		fmt.Fprintln(w, yellow("[WARN]"), "Common patterns detected:", strings.Join(result.DetectedPatternNames, ", "))
	}

	if result.InWeakDictionary {
		fmt.Fprintln(w, red("[WARN]"), "Password found in common weak passwords list")
	}

	printRecommendations(w, result.Recommendations)
}

func printRecommendations(w io.Writer, recommendations []string) {
	if len(recommendations) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recommendations:")
	for _, rec := range recommendations {
		fmt.Fprintf(w, "  - %s\n", rec)
	}
}

func printBreach(w io.Writer, report analyzeReport) {
	fmt.Fprintln(w)

	switch report.Breach.Status {
	case statusPwned:
		fmt.Fprintln(w, red("[PWNED]"), "Password found in data breaches!")
		fmt.Fprintf(w, "Occurrences: %d\n", report.Breach.Occurrences)
		fmt.Fprintf(w, "Severity: %s\n", report.Breach.Severity)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Adjusted strength: %s\n", colorCategory(report.Analysis.Category))
		fmt.Fprintf(w, "Adjusted score: %d/100\n", report.Analysis.Score)
		fmt.Fprintln(w, red("[CRITICAL]"), strength.ChangeBreached)
	case statusClean:
		fmt.Fprintln(w, green("[CLEAN]"), "Password not found in known breaches")
	default:
		fmt.Fprintln(w, yellow("[UNKNOWN]"), "Unable to check breach status:", report.Breach.Error)
	}
}
