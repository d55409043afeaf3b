package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"kaku/internal/clip"
	"kaku/internal/config"
	"kaku/internal/engine"
	"kaku/internal/export"
	"kaku/internal/session"
	"kaku/internal/stats"
	"kaku/internal/ui"
)

var (
	configFile string
	debug      bool
	width      int
	height     int
	author     string
	// export
	format     string
	output     string
	noTrim     bool
	cellPx     float64
	// stats
	plotHeight int
	// config
	initConfig bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "kaku [file]",
		Short:         "terminal block-art editor",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEditor,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/"+config.FileName+")")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "write a debug log")
	rootCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width for new files (max 32)")
	rootCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height for new files (max 32)")
	rootCmd.Flags().StringVar(&author, "author", "", "author recorded in saved files")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "export a .kaku file as text or PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "ansi", "output format: plain, ansi or png")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output path, - for stdout (default: input with .txt or .png)")
	exportCmd.Flags().BoolVar(&noTrim, "no-trim", false, "keep trailing blanks")
	exportCmd.Flags().Float64Var(&cellPx, "cell", 0, "png cell width in pixels (height is double)")

	statsCmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "summarize a .kaku file",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&plotHeight, "plot", 8, "row density plot height, 0 to disable")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}
	configCmd.Flags().BoolVar(&initConfig, "init", false, "write a default config file if none exists")

	rootCmd.AddCommand(exportCmd, statsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kaku:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.LoadDefault()
}

// setupLogging keeps log output off the alternate screen: it goes to a file
// in debug mode and is discarded otherwise.
func setupLogging(cfg *config.Config) (func(), error) {
	path := cfg.LogFile
	if debug && path == "" {
		path = "kaku-debug.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "kaku")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return func() { f.Close() }, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("author") {
		cfg.Author = author
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	app, err := engine.Open(path, engine.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		HistoryDepth: cfg.HistoryDepth,
		Author:       cfg.Author,
		TrimExport:   cfg.TrimExport,
		MessageTicks: cfg.MessageTicks,
		Clipboard:    clip.System{},
		SavePath:     cfg.SavePath,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(ui.New(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	trim := cfg.TrimExport && !noTrim

	c, _, err := session.Load(args[0])
	if err != nil {
		return err
	}

	ext := ".txt"
	if format == "png" {
		ext = ".png"
	}
	dest := output
	if dest == "" {
		dest = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ext
	}

	var w io.Writer = os.Stdout
	if dest != "-" {
		f, err := os.Create(dest)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "plain":
		_, err = io.WriteString(w, export.Plain(c, trim))
	case "ansi":
		_, err = io.WriteString(w, export.ANSI(c, trim))
	case "png":
		opts := export.DefaultPNGOptions()
		if cellPx > 0 {
			opts.CellWidth, opts.CellHeight = cellPx, 2*cellPx
			opts.FontSize = 1.5 * cellPx
		}
		err = export.PNG(w, c, opts)
	default:
		return fmt.Errorf("unknown format %q (want plain, ansi or png)", format)
	}
	if err != nil {
		return err
	}
	if dest != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "exported %s\n", dest)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	c, meta, err := session.Load(args[0])
	if err != nil {
		return err
	}
	s := stats.Summarize(c)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "file:     %s\n", args[0])
	if meta.Author != "" {
		fmt.Fprintf(out, "author:   %s\n", meta.Author)
	}
	fmt.Fprintf(out, "created:  %s\n", meta.Created.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "modified: %s\n", meta.Modified.Local().Format("2006-01-02 15:04"))
	fmt.Fprint(out, s.String())
	if plotHeight > 0 && s.Drawn > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, s.Plot(plotHeight))
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if initConfig {
		path := configFile
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
