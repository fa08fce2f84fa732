package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llmsbrowse",
	Short: "Browse prompt libraries and screenshot galleries in the terminal",
	Long: `llmsbrowse shows a collection as a searchable, paginated grid of tiles.
Selecting a tile opens it in a viewer with previous/next navigation.

Collections:
- prompts: a JSON array of {id, name, value}; the viewer copies the text with c
- gallery: a JSON object of {title: imageUrl}; navigation wraps around

Sources are file paths or http(s) URLs. Without a subcommand both
collections are shown as tabs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runBrowse,
}

// GlobalOptions holds flags that override the config file
type GlobalOptions struct {
	ConfigPath string // Override the config file location
	LogFile    string // Override [log] file
	PageSize   int    // Override page_size when > 0
	Clipboard  string // Override clipboard when set
	Match      string // Override match when set
	Watch      bool   // Reload file sources when they change
}

// GlobalOpts holds the parsed global flags (exported for testing)
var GlobalOpts GlobalOptions

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.ConfigPath, "config", "", "Config file (default ~/.config/llmsbrowse/config.toml)")
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.LogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().IntVar(&GlobalOpts.PageSize, "page-size", 0, "Items per page")
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.Clipboard, "clipboard", "", "Clipboard backend: auto, system or osc52")
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.Match, "match", "", "Search matching: substring or fuzzy")
	rootCmd.PersistentFlags().BoolVar(&GlobalOpts.Watch, "watch", false, "Reload file sources when they change")

	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(configCmd)
}
