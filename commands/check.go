package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/pivotal-cf/pw-alert/breach"
)

type CheckCommand struct {
	BreachOptions
}

type checkResult struct {
	line int
	info breach.BreachInfo
	err  error
}

func (command *CheckCommand) Execute(args []string) error {
	logger, cfg, err := command.setup("check")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := buildBreachClient(cfg)

	var results []*checkResult
	var group errgroup.Group
	group.SetLimit(cfg.Concurrency)

	scanner := bufio.NewScanner(os.Stdin)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		candidate := trimLineEnding(scanner.Text())
		if candidate == "" {
			continue
		}

		result := &checkResult{line: lineNumber}
		results = append(results, result)

		group.Go(func() error {
			result.info, result.err = client.Lookup(ctx, logger.Session("check", lager.Data{"line": result.line}), candidate)
			return nil
		})
	}

	group.Wait()

	if err := scanner.Err(); err != nil {
		return err
	}

	var errs error
	pwned := 0

	for _, r := range results {
		switch {
		case r.err != nil:
			fmt.Println(yellow("[UNKNOWN]"), fmt.Sprintf("line %d:", r.line), r.err)
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", r.line, r.err))
		case r.info.IsPwned:
			pwned++
			fmt.Println(red("[PWNED]"), fmt.Sprintf("line %d: %d occurrences, severity %s", r.line, r.info.OccurrenceCount, r.info.Severity()))
		default:
			fmt.Println(green("[CLEAN]"), fmt.Sprintf("line %d", r.line))
		}
	}

	if pwned > 0 {
		fmt.Println()
		fmt.Printf("%d of %d passwords found in known breaches. Change them immediately.\n", pwned, len(results))
		os.Exit(3)
	}

	return errs
}
