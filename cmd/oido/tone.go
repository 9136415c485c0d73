package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vsariola/oido"
	"github.com/vsariola/oido/synth"
	"github.com/vsariola/oido/trainer"
)

var toneDuration, chordDuration time.Duration

func init() {
	toneCmd.Flags().DurationVar(&toneDuration, "duration", synth.DefaultToneDuration, "length of each tone")
	chordCmd.Flags().DurationVar(&chordDuration, "duration", synth.DefaultChordDuration, "length of the chord")
	rootCmd.AddCommand(toneCmd, chordCmd)
}

var toneCmd = &cobra.Command{
	Use:   "tone NOTE...",
	Short: "Plays notes one after another",
	Long: `Plays the given notes, e.g. "oido tone C4 E4 G4", one after another and
exits. Useful for checking that the audio output works.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		var script trainer.Script
		for _, name := range args {
			note, ok := oido.NoteByName(name)
			if !ok {
				return fmt.Errorf("unknown note %q", name)
			}
			script = append(script, trainer.Tone(note.Frequency, toneDuration, toneDuration))
		}
		return play(c, script)
	},
}

var chordCmd = &cobra.Command{
	Use:   "chord ROOT TEMPLATE",
	Short: "Plays a chord",
	Long: `Builds a chord on ROOT and plays it, e.g. "oido chord D4 min". TEMPLATE is
the name or the short name of one of the chord templates.`,
	Args: cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		root, ok := oido.NoteIndex(args[0])
		if !ok {
			return fmt.Errorf("unknown note %q", args[0])
		}
		template, ok := oido.ChordByName(args[1])
		if !ok {
			return fmt.Errorf("unknown chord %q", args[1])
		}
		notes, err := oido.ResolveChord(root, template)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "%s %s: %v\n", oido.PitchClass(args[0]), template.Name, oido.Names(notes))
		return play(c, trainer.Script{trainer.Chord(oido.Frequencies(notes), chordDuration, chordDuration)})
	},
}

// play runs the script to the end on a sequencer of its own.
func play(c *cobra.Command, script trainer.Script) error {
	engine := newEngine()
	defer engine.Close()
	sequencer := trainer.NewSequencer(trainer.NewBroker(), engine)
	if err := sequencer.Play(c.Context(), 0, script); err != nil {
		return fmt.Errorf("cannot play: %w", err)
	}
	return nil
}
