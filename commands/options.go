package commands

import (
	"bufio"
	"io"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/pw-alert/breach"
	"github.com/pivotal-cf/pw-alert/config"
	credlog "github.com/pivotal-cf/pw-alert/log"
	"github.com/pivotal-cf/pw-alert/net"
)

type BreachOptions struct {
	ConfigFile string `long:"config-file" description:"path to a YAML config file" value-name:"PATH"`
	Debug      bool   `long:"debug" description:"enables debug logging"`
	NoColor    bool   `long:"no-color" description:"disable colored output"`

	Breach config.Config `group:"Breach Lookup Options"`
}

func (o *BreachOptions) setup(component string) (lager.Logger, *config.Config, error) {
	ansi.DisableColors(o.NoColor)

	logger := credlog.NewLogger(component, o.Debug, lager.NewWriterSink(os.Stderr, lager.DEBUG))

	var file *config.Config
	if o.ConfigFile != "" {
		bs, err := os.ReadFile(o.ConfigFile)
		if err != nil {
			return nil, nil, err
		}

		file, err = config.LoadConfig(bs)
		if err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Merge(file, &o.Breach)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return logger, cfg, nil
}

func buildBreachClient(cfg *config.Config) breach.Client {
	var httpClient net.Client = net.NewHTTPClient(cfg.ConnectTimeout, cfg.ReadTimeout)
	if cfg.Retries > 0 {
		httpClient = net.NewRetryingClient(httpClient, cfg.Retries)
	}

	var opts []breach.FetcherOption
	if cfg.AddPadding {
		opts = append(opts, breach.WithPadding())
	}

	fetcher := breach.NewRangeFetcher(cfg.RangeURL, cfg.UserAgent, httpClient, opts...)
	if cfg.CacheSize > 0 {
		fetcher = breach.NewCachingRangeFetcher(fetcher, cfg.CacheSize)
	}

	return breach.NewClient(fetcher)
}

// readCandidate returns the first line of r without its line ending. Nothing
// else is trimmed.
func readCandidate(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
