/*
Package trainer contains the data model for the oido ear trainer GUI.

The trainer package defines the Model struct, which holds the whole session
state: the selected mode, the running score and the current round with its
target, phase and the user's progress.

The GUI does not modify the Model directly, rather, it reads a Snapshot for
rendering and executes Actions for everything the user does. For example,
model.Replay() returns an Action that plays the current round again, which can
be executed with model.Replay().Do(). Actions advertise whether they are
enabled, so the GUI can hide the Replay button while nothing can be replayed.

The Model is owned by the GUI goroutine. Playback runs on the Sequencer
goroutine and timers run on their own; all of them talk back to the Model only
by sending messages through the Broker. Every message that changes a round
carries the RoundID it was created for, and is ignored if that round is no
longer the current one.
*/
package trainer
