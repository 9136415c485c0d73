package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"gioui.org/app"
	"github.com/spf13/cobra"
	"github.com/vsariola/oido"
	"github.com/vsariola/oido/cmd"
	"github.com/vsariola/oido/oto"
	"github.com/vsariola/oido/synth"
	"github.com/vsariola/oido/trainer"
	"github.com/vsariola/oido/trainer/gioui"
)

var (
	startMode oido.Mode
	language  string
	midiInput string
	noAudio   bool
)

var rootCmd = &cobra.Command{
	Use:   "oido",
	Short: "Ear training game",
	Long: `oido plays a note, a short pattern or a chord and asks you to find it on
the piano. Without a subcommand the game window is opened.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		session.model.SetMIDIContext(cmd.NewMidiContext(session.broker))
		if session.prefs.MIDIInput != "" {
			session.model.OpenMIDIInput(session.prefs.MIDIInput).Do()
		}
		if c.Flags().Changed("mode") {
			session.model.SelectMode(startMode).Do()
		}
		trainerUi := gioui.NewTrainer(session.model)
		go func() {
			trainerUi.Main()
			session.close()
			os.Exit(0)
		}()
		app.Main()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "language of the texts, e.g. es or en (default from preferences or $LANG)")
	rootCmd.PersistentFlags().BoolVar(&noAudio, "no-audio", false, "do not open the audio device; the game runs silently")
	rootCmd.Flags().Var(&startMode, "mode", "skip the menu and start in the given mode, e.g. chord-reference")
	rootCmd.Flags().StringVar(&midiInput, "midi-input", "", "connect MIDI input to matching device name prefix")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}

// session holds everything a game needs besides the user interface.
type session struct {
	prefs     trainer.Preferences
	broker    *trainer.Broker
	engine    *synth.Engine
	sequencer *trainer.Sequencer
	model     *trainer.Model
}

func newSession() (*session, error) {
	prefs := trainer.MakePreferences()
	if midiInput != "" {
		prefs.MIDIInput = midiInput
	}
	if language != "" {
		prefs.Language = language
	}
	texts, err := trainer.LoadTexts(prefs.Language, os.Getenv("LANG"))
	if err != nil {
		return nil, fmt.Errorf("cannot load texts: %w", err)
	}
	broker := trainer.NewBroker()
	engine := newEngine()
	sequencer := trainer.NewSequencer(broker, engine)
	go sequencer.Run()
	return &session{
		prefs:     prefs,
		broker:    broker,
		engine:    engine,
		sequencer: sequencer,
		model:     trainer.NewModel(broker, engine, sequencer, prefs, texts),
	}, nil
}

func (s *session) close() {
	if !s.model.Quitted() {
		s.model.Quit().Do()
	}
	select {
	case <-s.broker.FinishedSequencer:
	case <-time.After(3 * time.Second):
		log.Printf("sequencer did not stop in time")
	}
	if err := s.engine.Close(); err != nil {
		log.Printf("cannot close audio: %v", err)
	}
}

func newEngine() *synth.Engine {
	if noAudio {
		return synth.NewEngine(func() (oido.AudioContext, error) { return oido.NullAudioContext{}, nil })
	}
	return synth.NewEngine(func() (oido.AudioContext, error) {
		context, err := oto.NewContext()
		if err != nil {
			log.Printf("audio: %v", err)
			return nil, err
		}
		return context, nil
	})
}
