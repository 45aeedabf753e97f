package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"coffeehouse/pkg/beverage"
	"coffeehouse/pkg/condiment"
	"coffeehouse/pkg/menu"
	"coffeehouse/pkg/order"
	"coffeehouse/pkg/version"
)

// Config captures CLI flags for a single Run call.
type Config struct {
	showVersion bool
	showSteps   bool
	base        string
	condiments  []string
}

// errWithoutBase is returned when condiments are requested with nothing to put them on.
var errWithoutBase = errors.New("--with requires --base")

// Run builds the root command and executes it with args.
func Run(ctx context.Context, args []string, logger *log.Logger) error {
	cmd := NewCommand(logger)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewCommand returns the coffeehouse root command. Receipt lines go to the
// command's output writer; the logger only reports lifecycle events.
func NewCommand(logger *log.Logger) *cobra.Command {
	if logger == nil {
		logger = log.New(os.Stdout, "[coffeehouse] ", log.LstdFlags)
	}

	var cfg Config
	cmd := &cobra.Command{
		Use:   "coffeehouse",
		Short: "Compose a coffee order and print its description and cost",
		Long: fmt.Sprintf(
			"Compose a coffee order and print its description and cost.\n\n"+
				"Without --base the sample orders are printed.\n\n"+
				"Beverages:  %s\nCondiments: %s",
			strings.Join(menu.Beverages(), ", "),
			strings.Join(menu.Condiments(), ", "),
		),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd, cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&cfg.showVersion, "version", false, "Show the application version")
	flags.BoolVar(&cfg.showSteps, "steps", false, "Print a receipt line after every condiment is added")
	flags.StringVar(&cfg.base, "base", "", "Base beverage, e.g. espresso")
	flags.StringSliceVar(&cfg.condiments, "with", nil, "Condiments in the order they are added; repeat or comma-separate")
	return cmd
}

func execute(cmd *cobra.Command, cfg Config, logger *log.Logger) error {
	if cfg.showVersion {
		logger.Printf("coffeehouse version %s", version.Version())
		return nil
	}

	drinks, err := compose(cfg)
	if err != nil {
		if menu.IsUnknown(err) {
			logger.Printf("rejected order: %v", err)
		}
		return fmt.Errorf("unable to compose order: %w", err)
	}
	return order.Print(cmd.OutOrStdout(), drinks...)
}

// compose resolves the configured order into the drinks to print.
func compose(cfg Config) ([]beverage.Beverage, error) {
	if cfg.base == "" {
		if len(cfg.condiments) > 0 {
			return nil, errWithoutBase
		}
		return order.Demonstration()
	}

	if !cfg.showSteps {
		drink, err := menu.Compose(cfg.base, cfg.condiments...)
		if err != nil {
			return nil, err
		}
		return []beverage.Beverage{drink}, nil
	}

	base, err := menu.Base(cfg.base)
	if err != nil {
		return nil, err
	}
	wrappers := make([]condiment.Wrapper, 0, len(cfg.condiments))
	for _, name := range cfg.condiments {
		w, err := menu.Condiment(name)
		if err != nil {
			return nil, err
		}
		wrappers = append(wrappers, w)
	}
	return order.Steps(base, wrappers...)
}
