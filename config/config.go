package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v2"

	"github.com/pivotal-cf/pw-alert/breach"
)

const maxConnectTimeout = 5 * time.Second

type Config struct {
	RangeURL       string        `long:"range-url" description:"breach range query endpoint" env:"PW_ALERT_RANGE_URL" value-name:"URL" yaml:"range_url"`
	UserAgent      string        `long:"user-agent" description:"User-Agent sent with range queries" value-name:"AGENT" yaml:"user_agent"`
	ConnectTimeout time.Duration `long:"connect-timeout" description:"give up connecting to the range endpoint after this long (max 5s)" value-name:"DURATION" yaml:"connect_timeout"`
	ReadTimeout    time.Duration `long:"read-timeout" description:"give up waiting for range endpoint data after this long" value-name:"DURATION" yaml:"read_timeout"`
	AddPadding     bool          `long:"add-padding" description:"ask the range endpoint to pad responses" yaml:"add_padding"`
	Retries        int           `long:"retries" description:"retry failed range queries this many times" value-name:"N" yaml:"retries"`
	CacheSize      int           `long:"cache-size" description:"cache this many range responses by prefix" value-name:"N" yaml:"cache_size"`
	Concurrency    int           `long:"concurrency" description:"maximum concurrent range queries" value-name:"N" yaml:"concurrency"`
}

func Defaults() *Config {
	return &Config{
		RangeURL:       breach.DefaultRangeURL,
		UserAgent:      "pw-alert",
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    10 * time.Second,
		Concurrency:    4,
	}
}

func LoadConfig(bs []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Merge lays every non-zero field of each override over the defaults, in
// order, so later overrides win.
func Merge(overrides ...*Config) (*Config, error) {
	c := Defaults()

	for _, o := range overrides {
		if o == nil {
			continue
		}

		if err := merge(reflect.ValueOf(c).Elem(), reflect.ValueOf(o).Elem()); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Config) Validate() error {
	var result error

	u, err := url.Parse(c.RangeURL)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid range url: %s", err))
	} else if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("range url must be an absolute http(s) url: %q", c.RangeURL))
	}

	if c.UserAgent == "" {
		result = multierror.Append(result, errors.New("no user agent specified"))
	}

	if c.ConnectTimeout <= 0 || c.ConnectTimeout > maxConnectTimeout {
		result = multierror.Append(result, fmt.Errorf("connect timeout must be between 0 and %s", maxConnectTimeout))
	}

	if c.ReadTimeout <= 0 {
		result = multierror.Append(result, errors.New("read timeout must be positive"))
	} else if c.ReadTimeout < c.ConnectTimeout {
		result = multierror.Append(result, errors.New("read timeout must not be shorter than connect timeout"))
	}

	if c.Retries < 0 {
		result = multierror.Append(result, errors.New("retries must not be negative"))
	}

	if c.CacheSize < 0 {
		result = multierror.Append(result, errors.New("cache size must not be negative"))
	}

	if c.Concurrency < 1 {
		result = multierror.Append(result, errors.New("concurrency must be at least 1"))
	}

	return result
}

// From src/pkg/encoding/json.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

func merge(dst, src reflect.Value) error {
	if !src.IsValid() {
		// this means the value is the default value,
		// which we don't want to set on dest
		return nil
	}

	switch src.Kind() {
	case reflect.Struct:
		for i, n := 0, dst.NumField(); i < n; i++ {
			err := merge(dst.Field(i), src.Field(i))
			if err != nil {
				return err
			}
		}
	default:
		if dst.CanSet() && !isEmptyValue(src) {
			dst.Set(src)
		}
	}

	return nil
}
