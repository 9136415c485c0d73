package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vsariola/oido"
	"github.com/vsariola/oido/trainer"
)

var drillMode = oido.SingleNoteReference

func init() {
	drillCmd.Flags().Var(&drillMode, "mode", "mode to drill, e.g. pattern-absolute")
	rootCmd.AddCommand(drillCmd)
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Plays the game in the terminal",
	Long: `Plays the game without a window. Type note names (C4, F#5, ...) to press
keys, a mode name to switch modes, or one of the commands: replay, verify,
play, next, menu, quit.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		defer session.close()
		return drill(session.model, c.InOrStdin(), c.OutOrStdout(), drillMode)
	},
}

// drill runs the model on the calling goroutine, reading one intent per line
// from in. The snapshot is printed after every intent and every finished
// playback.
func drill(m *trainer.Model, in io.Reader, out io.Writer, mode oido.Mode) error {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()
	show := func() {
		s := m.Snapshot()
		fmt.Fprint(out, s.String())
		fmt.Fprint(out, m.Texts().Format("score", struct{ Correct, Total int }{s.Score.Correct, s.Score.Total}), "\n> ")
	}
	m.SelectMode(mode).Do()
	show()
	for !m.Quitted() {
		select {
		case msg := <-m.Broker().ToModel:
			m.ProcessMsg(msg)
			if _, ok := msg.Data.(trainer.PlaybackDone); ok {
				show()
			}
		case line, ok := <-lines:
			if !ok {
				m.Quit().Do()
				break
			}
			if strings.TrimSpace(line) == "" {
				show()
				continue
			}
			action, ok := drillAction(m, line)
			if !ok {
				fmt.Fprintf(out, "unknown command %q\n> ", strings.TrimSpace(line))
				continue
			}
			if !action.Enabled() {
				fmt.Fprintf(out, "%q is not possible now\n> ", strings.TrimSpace(line))
				continue
			}
			action.Do()
			if !m.Quitted() {
				show()
			}
		}
	}
	fmt.Fprintln(out)
	return nil
}

// drillAction maps one line of input to the action it stands for.
func drillAction(m *trainer.Model, line string) (trainer.Action, bool) {
	word := strings.TrimSpace(line)
	switch strings.ToLower(word) {
	case "replay", "r":
		return m.Replay(), true
	case "verify", "v":
		return m.VerifyChord(), true
	case "play", "p":
		return m.PlaySelection(), true
	case "next", "n":
		return m.NextRound(), true
	case "menu":
		return m.BackToMenu(), true
	case "quit", "q", "exit":
		return m.Quit(), true
	}
	if mode, err := oido.ParseMode(word); err == nil {
		return m.SelectMode(mode), true
	}
	if len(word) > 0 {
		word = strings.ToUpper(word[:1]) + word[1:]
	}
	if _, ok := oido.NoteIndex(word); ok {
		return m.PressKey(word), true
	}
	return trainer.Action{}, false
}
