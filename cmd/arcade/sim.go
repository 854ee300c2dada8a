package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/engine"
	"github.com/vovakirdan/happy-arcade/internal/registry"
)

var (
	flagScript string
	flagTicks  int
	flagFrame  bool
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Replay scripted input without a terminal",
	Long: `Run a game headlessly from an input script and print what happened.

The game comes from the argument or the script's "game" field. --seed and
--ticks override the script. Logs go to stderr unless --log is set.

Script format:
  game: kitty
  seed: 42
  ticks: 600
  steps:
    - {at: 0, for: 120, keys: [right]}
    - {at: 30, keys: [jump]}
    - {at: 200, for: 10, pad: {index: 0, buttons: [0], axes: [0.8]}}
    - {at: 300, click: {x: 0.2, y: 0.8}}

Examples:
  arcade sim --script run.yaml
  arcade sim train --script boost.yaml --ticks 3600 --frame`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to the input script YAML")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to run (overrides the script)")
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame")
	_ = simCmd.MarkFlagRequired("script")
}

func runSim(_ *cobra.Command, args []string) error {
	sc, err := engine.LoadScript(flagScript)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		sc.Game = args[0]
	}
	if flagTicks > 0 {
		sc.Ticks = flagTicks
	}
	if flagSeed != 0 {
		sc.Seed = flagSeed
	}
	if sc.Game == "" {
		return fmt.Errorf("no game given in arguments or script")
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	applyConfigPath(sc.Game)
	game, err := registry.Create(sc.Game)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = sc.Seed

	s := engine.NewSession(game, rt, logger)
	rep := engine.Run(s, sc)
	logger.Info("simulation finished", "game", sc.Game, "ticks", rep.Ticks, "phase", rep.State.Phase)

	fmt.Println(reportTable(rep))
	if flagFrame {
		screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
		s.Render(screen)
		fmt.Println(screen.String())
	}
	return nil
}

func reportTable(rep engine.Report) *table.Table {
	st := rep.State
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Stat", "Value").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	t.Row("ticks", strconv.Itoa(rep.Ticks))
	t.Row("phase", st.Phase.String())
	t.Row("score", strconv.Itoa(st.Score))
	t.Row("lives", strconv.Itoa(st.Lives))
	t.Row("speed", strconv.FormatFloat(st.Speed, 'f', 3, 64))
	t.Row("distance", strconv.FormatFloat(st.Distance, 'f', 1, 64))

	kinds := make([]core.EventKind, 0, len(rep.Events))
	for k := range rep.Events {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		t.Row("event "+k.String(), strconv.Itoa(rep.Events[k]))
	}
	return t
}
