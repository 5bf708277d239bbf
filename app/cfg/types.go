package cfg

type Cfg struct {
	// Input and output files
	InputFile      string
	JSONOutput     string
	MarkdownOutput string
	RulesFile      string

	// Optional outputs
	DBPath    string
	ServeAddr string

	// Application metadata
	Debug   bool
	Version string
}
