package monte

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type options struct {
	options []ConfigOption
	err     error
}

// ParseCommandLine configures the battery from command line options or from a YAML
// configuration file passed with the -c flag.  Returns a slice of functional options that can
// be applied with NewConfig.
func ParseCommandLine(name string) ([]ConfigOption, error) {
	pf := createFlagSet(name)
	return parse(os.Args[1:], pf)
}

func parse(args []string, pf *pflag.FlagSet) ([]ConfigOption, error) {
	options := options{}
	if err := pf.ParseAll(args, parseFlag(&options)); err != nil {
		return options.options, err
	}
	if pf.NArg() > 0 {
		return options.options, fmt.Errorf("unexpected arguments: %s", strings.Join(pf.Args(), " "))
	}
	return options.options, options.err
}

func createFlagSet(name string) *pflag.FlagSet {
	pf := pflag.NewFlagSet(name, pflag.ContinueOnError)
	pf.Usage = func() {
		fmt.Printf("Usage of %s:\n%s <options>\n", name, name)
		fmt.Printf("\n%s", pf.FlagUsagesWrapped(10))
		fmt.Printf("\nChecks: %s\n", strings.Join(CheckNames(), ", "))
	}

	pf.StringP("config", "c", "", "Use yaml configuration file")
	pf.Int64P("seed", "s", 0, "Base seed. Every check derives its own generator from it.  Random when not set.")
	pf.IntP("samples", "n", 100000, "Number of samples each check draws")
	pf.Float64("z", 5.0, "Number of standard deviations a statistic may stray before the check fails")
	pf.Float64("error-rate", 0, "Chance a correct generator fails a check.  Sets z.")
	pf.String("source", "pcg32", "Base generator: pcg32 or math")
	pf.StringArray("check", nil, "Check to run.  May be repeated.  Runs every check when not set.")
	pf.Int32("bound", 10, "Exclusive upper bound for int_uniform")
	pf.Float64("probability", 0.3, "Probability for bool_fraction")
	pf.Float64("value", 2.3, "Real value for discretise")
	pf.String("range", "-1:1", "Interval for float_range as min:max")
	pf.Int("runs", 100, "Number of batteries calibrate runs")
	pf.Int("workers", 0, "Number of calibrate workers.  Defaults to the number of CPUs.")
	pf.String("format", "text", "Output format: text or json")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("rollbar-token", "", "Report unexpected check failures to Rollbar with this token")

	return pf
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "config":
			opts, err := parseFromFile(value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, opts...)
		default:
			option, err := handleOption(flag.Name, value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, option)
		}
		return nil
	}
}

func handleOption(name string, value string) (ConfigOption, error) {
	switch name {
	case "seed":
		return Seed(value), nil
	case "samples":
		return Samples(value), nil
	case "z":
		return Z(value), nil
	case "error-rate":
		return ErrorRate(value), nil
	case "source":
		return Source(value), nil
	case "check":
		return Check(value), nil
	case "bound":
		return Bound(value), nil
	case "probability":
		return Probability(value), nil
	case "value":
		return Value(value), nil
	case "range":
		return Range(value), nil
	case "runs":
		return Runs(value), nil
	case "workers":
		return Workers(value), nil
	case "format":
		return Format(value), nil
	case "log-level":
		return LogLevel(value), nil
	case "rollbar-token":
		return RollbarToken(value), nil
	default:
		return nil, fmt.Errorf("unknown option: %s", name)
	}
}

func parseFromFile(fpath string) ([]ConfigOption, error) {
	var options []ConfigOption
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return options, err
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return options, err
	}
	for k, v := range cfg {
		var value string
		switch val := v.(type) {
		case string:
			value = val
		case int:
			value = strconv.Itoa(val)
		case float64:
			value = strconv.FormatFloat(val, 'g', -1, 64)
		// handles the case of a list of checks
		case []interface{}:
			alt := listFieldsYAML{}
			if err := yaml.Unmarshal(data, &alt); err != nil {
				return options, fmt.Errorf("could not unmarshal config value for key: %s", k)
			}
			if k != "check" {
				return options, fmt.Errorf("unknown list option: %s", k)
			}
			for _, val := range alt.Check {
				options = append(options, Check(val))
			}
			continue
		default:
			return options, fmt.Errorf("could not process config key %s, unknown type", k)
		}
		opt, err := handleOption(k, value)
		if err != nil {
			return options, err
		}
		options = append(options, opt)
	}
	return options, nil
}

type listFieldsYAML struct {
	Check []string `yaml:"check"`
}
