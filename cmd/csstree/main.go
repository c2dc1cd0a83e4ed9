// Command csstree tokenizes, parses, transforms and checks CSS stylesheets.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tdewolff/csstree/css"
	"github.com/tdewolff/csstree/internal/config"
	"github.com/tdewolff/csstree/internal/logger"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// app holds the state shared by the commands of one invocation.
type app struct {
	v     *viper.Viper
	cfg   *config.Config
	stdin io.Reader
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:     viper.New(),
		stdin: stdin,
	}
	a.v.SetEnvPrefix("CSSTREE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "csstree",
		Short:         "Tokenize, parse and transform CSS",
		Long:          `csstree parses CSS into a lossless tree. An unmodified tree prints back to its source byte for byte.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(stderr)
			return a.loadConfig()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file, defaults to .csstree.{yaml,yml,json,jsonc} in the working directory")
	flags.Bool("lenient", false, "Accept unclosed strings, comments and brackets")
	flags.Int("max-depth", css.DefaultMaxDepth, "Maximum nesting depth of blocks and parentheses")
	flags.BoolP("verbose", "v", false, "Print debug messages")
	for _, name := range []string{"config", "lenient", "max-depth", "verbose"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		a.tokensCmd(),
		a.parseCmd(),
		a.printCmd(),
		a.checkCmd(),
		versionCmd(),
	)
	return root
}

// loadConfig reads the config file and makes its values the defaults of the flags and environment.
func (a *app) loadConfig() error {
	logger.SetVerbose(a.v.GetBool("verbose"))

	var err error
	if filename := a.v.GetString("config"); filename != "" {
		if a.cfg, err = config.LoadFile(filename); err != nil {
			return err
		}
		logger.Debug("using config %s", filename)
	} else if a.cfg, err = config.Load(os.DirFS("."), "."); err != nil {
		logger.Warn("ignoring config: %v", err)
		a.cfg = config.Default()
	} else if a.cfg == nil {
		a.cfg = config.Default()
	}

	a.v.SetDefault("lenient", a.cfg.Lenient)
	a.v.SetDefault("max-depth", a.cfg.MaxDepth)
	a.v.SetDefault("jobs", a.cfg.Jobs)
	a.v.SetDefault("root-value", a.cfg.RootValue)
	return nil
}

// options returns the parser options of the flags, environment and config.
func (a *app) options(filename string) []css.Option {
	return []css.Option{
		css.Lenient(a.v.GetBool("lenient")),
		css.MaxDepth(a.v.GetInt("max-depth")),
		css.Filename(filename),
	}
}
