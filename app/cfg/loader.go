package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input and output files
	InputFile      string `long:"input" env:"INPUT_FILE" default:"tweets_naval_2016-01-01_to_2025-12-24.json" description:"JSON array of posts, or a local RSS/Atom export"`
	JSONOutput     string `long:"json-out" env:"JSON_OUTPUT" default:"naval_wisdom_selected.json" description:"Path of the selected posts JSON file"`
	MarkdownOutput string `long:"markdown-out" env:"MARKDOWN_OUTPUT" default:"naval_wisdom_selected.md" description:"Path of the top posts Markdown document"`
	RulesFile      string `long:"rules" env:"RULES_FILE" description:"YAML selection rules (optional, built-in rules when empty)"`

	// Optional outputs
	DBPath    string `long:"db-path" env:"DB_PATH" description:"SQLite database to archive the selection into (optional)"`
	ServeAddr string `long:"serve" env:"SERVE_ADDR" description:"Address to serve a read-only preview on after writing, e.g. :8080 (optional)"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	return LoadArgs(nil)
}

// LoadArgs parses the given arguments, falling back to os.Args when args is nil
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		InputFile:      raw.InputFile,
		JSONOutput:     raw.JSONOutput,
		MarkdownOutput: raw.MarkdownOutput,
		RulesFile:      raw.RulesFile,
		DBPath:         raw.DBPath,
		ServeAddr:      raw.ServeAddr,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
