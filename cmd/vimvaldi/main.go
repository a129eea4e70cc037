package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/xiaoxiae/Vimvaldi/core"
	"github.com/xiaoxiae/Vimvaldi/internal/config"
	"github.com/xiaoxiae/Vimvaldi/internal/history"
	"github.com/xiaoxiae/Vimvaldi/music"
	"github.com/xiaoxiae/Vimvaldi/regions"
)

func main() {
	root := &cobra.Command{
		Use:   "vimvaldi [file]",
		Short: "A vim-like terminal music sheet editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(path)
		},
		SilenceUsage: true,
	}
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	clef := defaultClef(cfg.UI.DefaultClef)
	timeSig := defaultTime(cfg.UI.DefaultTime)

	// history is optional; editing works without it
	var store *history.Store
	if s, err := history.Open(cfg.History.Path); err != nil {
		log.Printf("warn: history disabled: %v", err)
	} else {
		store = s
		defer store.Close()
	}

	var recorder regions.Recorder
	if store != nil {
		recorder = store
	}

	status := regions.NewStatusLine()
	editor := regions.NewEditor(clef, timeSig, recorder)
	menu := regions.NewMenu()
	if store != nil {
		menu.Recent = store.MostRecent
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	dispatcher := core.NewDispatcher(status, keys)
	dispatcher.Register(editor)
	dispatcher.Register(menu)
	dispatcher.Register(regions.NewLogo())
	dispatcher.Register(regions.NewTextView("help", regions.HelpText))
	dispatcher.Register(regions.NewTextView("info", regions.InfoText))

	for kind, route := range map[string]core.Route{
		core.StatusTextCommand{}.Kind():   {Targets: []string{"status"}},
		core.ClearStatusCommand{}.Kind():  {Targets: []string{"status"}},
		core.ScoreChangedCommand{}.Kind(): {Targets: []string{"status"}},
		core.NewScoreCommand{}.Kind():     {Targets: []string{"editor"}},
		core.InsertTokenCommand{}.Kind():  {Targets: []string{"editor"}},
		core.SetOptionCommand{}.Kind():    {Targets: []string{"editor"}},
		core.OpenFileCommand{}.Kind():     {Targets: []string{"editor"}},
		core.SaveFileCommand{}.Kind():     {Targets: []string{"editor"}},
		core.ExportMIDICommand{}.Kind():   {Targets: []string{"editor"}},
	} {
		dispatcher.Route(kind, route)
	}

	if path != "" {
		// open straight into the editor, skipping menu and splash; a file
		// that cannot be read or decoded aborts startup with a non-zero exit
		if err := editor.Open(path); err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		if err := dispatcher.Push("editor"); err != nil {
			return err
		}
	} else {
		if err := dispatcher.Push("menu"); err != nil {
			return err
		}
		if err := dispatcher.Push("logo"); err != nil {
			return err
		}
	}

	app := core.NewApp(dispatcher, keys)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return app.Err()
}

func defaultClef(name string) music.Clef {
	if clef, ok := music.ClefFromName(name); ok {
		return clef
	}
	return music.Treble
}

func defaultTime(value string) music.TimeSignature {
	var beats, unit int
	if _, err := fmt.Sscanf(value, "%d/%d", &beats, &unit); err == nil && beats > 0 && unit > 0 {
		return music.TimeSignature{Beats: beats, Unit: unit}
	}
	return music.TimeSignature{Beats: 4, Unit: 4}
}
