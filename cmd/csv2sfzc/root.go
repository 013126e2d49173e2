package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is empty unless set at link time (-ldflags "-X main.Version=...");
// when empty, --version falls back to the module's build info.
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "csv2sfzc [root directory]",
	Short: "Convert CSV sample-mapping tables into SFZ instrument files.",
	Long: "csv2sfzc recursively walks a directory, converting every *.csv\n" +
		"mapping table into a sibling *.sfz file with the same stem.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("csv2sfzc ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			return
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		runConvert(cmd, root)
	},
}

// Execute runs rootCmd and exits with status 1 if it returns an error.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("dry-run", false, "report which files would be written without writing them")
	rootCmd.PersistentFlags().IntP("jobs", "j", runtime.NumCPU(), "number of CSV files to convert concurrently")
}

func runConvert(cmd *cobra.Command, root string) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	jobs := GetInt(cmd, "jobs")
	if jobs < 1 {
		jobs = 1
	}

	result := convertTree(root, jobs, GetFlag(cmd, "dry-run"))
	for _, r := range result.results {
		switch {
		case r.err != nil:
			log.WithField("file", r.path).Errorf("conversion failed: %v", r.err)
		case r.dryRun:
			log.WithField("file", r.path).Infof("would write %s", r.outPath)
		default:
			log.WithField("file", r.path).Infof("wrote %s", r.outPath)
		}
	}

	if result.failures > 0 {
		log.Errorf("%d of %d files failed", result.failures, len(result.results))
		os.Exit(1)
	}
}

// GetFlag gets an expected bool flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetInt gets an expected int flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}
