// Package main is the entry point for the tonality CLI
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/james-see/tonality/pkg/api"
	"github.com/james-see/tonality/pkg/midiseq"
	"github.com/james-see/tonality/pkg/theory"
	"github.com/james-see/tonality/pkg/theory/chords"
	"github.com/james-see/tonality/pkg/theory/scales"
	"github.com/james-see/tonality/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	rootPitch    string
	jsonOutput   bool
	chordOctave  int
	midiChannel  uint8
	midiVelocity uint8
	arpeggiate   bool
	serverPort   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tonality",
	Short: "Spell scales, chords, and intervals over the MIDI note space",
	Long: `tonality is a music theory tool built on MIDI note numbers (0-127).
It spells scales and chords on any root, parses chord symbols, transposes
pitches by named intervals, and renders results as MIDI messages.

Examples:
  tonality scale major --root C4
  tonality scale "melodic minor" --root A4
  tonality chord "dominant seventh" --root G4
  tonality symbol Am7
  tonality transpose C4 P5
  tonality midi Em/G
  tonality tui
  tonality serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List every scale in the catalog",
	RunE:  runScales,
}

var scaleCmd = &cobra.Command{
	Use:   "scale <name>",
	Short: "Spell a scale on a root pitch",
	Args:  cobra.ExactArgs(1),
	RunE:  runScale,
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "List every chord in the catalog",
	RunE:  runChords,
}

var chordCmd = &cobra.Command{
	Use:   "chord <name>",
	Short: "Spell a chord on a root pitch",
	Args:  cobra.ExactArgs(1),
	RunE:  runChord,
}

var symbolCmd = &cobra.Command{
	Use:   "symbol <symbol>",
	Short: "Voice a chord symbol like Am7 or Em/G",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbol,
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <pitch> <interval>",
	Short: "Move a pitch by an interval (P5, m3, or signed semitones)",
	Args:  cobra.ExactArgs(2),
	RunE:  runTranspose,
}

var intervalsCmd = &cobra.Command{
	Use:   "intervals",
	Short: "List the named intervals within the octave",
	RunE:  runIntervals,
}

var midiCmd = &cobra.Command{
	Use:   "midi <symbol>",
	Short: "Render a chord symbol as MIDI channel messages",
	Args:  cobra.ExactArgs(1),
	RunE:  runMIDI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// scale and chord commands
	scaleCmd.Flags().StringVarP(&rootPitch, "root", "r", "C4", "Root pitch")
	scaleCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	chordCmd.Flags().StringVarP(&rootPitch, "root", "r", "C4", "Root pitch")
	chordCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")

	// symbol command
	symbolCmd.Flags().IntVarP(&chordOctave, "octave", "O", 4, "Octave for the chord root")

	// midi command
	midiCmd.Flags().IntVarP(&chordOctave, "octave", "O", 4, "Octave for the chord root")
	midiCmd.Flags().Uint8Var(&midiChannel, "channel", 0, "MIDI channel (0-15)")
	midiCmd.Flags().Uint8Var(&midiVelocity, "velocity", 0, "Note velocity (default 100)")
	midiCmd.Flags().BoolVar(&arpeggiate, "arpeggio", false, "Render notes one after another instead of stacked")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(scalesCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(chordsCmd)
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(symbolCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(intervalsCmd)
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func parseRoot() (theory.Pitch, error) {
	return theory.ParsePitch(rootPitch)
}

func pitchNames(pitches []theory.Pitch) []string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.String()
	}
	return names
}

func formatPitches(pitches []theory.Pitch) string {
	return strings.Join(pitchNames(pitches), " ")
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runScales(cmd *cobra.Command, args []string) error {
	for _, name := range scales.Names() {
		fmt.Println(name)
	}
	return nil
}

func runScale(cmd *cobra.Command, args []string) error {
	root, err := parseRoot()
	if err != nil {
		return err
	}

	name := args[0]
	if ds, ok := scales.DirectionalByName(name); ok {
		asc, err := ds.AscendingPitches(root)
		if err != nil {
			return err
		}
		desc, err := ds.DescendingPitches(root)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(map[string]interface{}{
				"scale":      name,
				"root":       root.String(),
				"ascending":  pitchNames(asc),
				"descending": pitchNames(desc),
			})
		}
		fmt.Printf("%s %s\n", name, root)
		fmt.Printf("  ascending:  %s\n", formatPitches(asc))
		fmt.Printf("  descending: %s\n", formatPitches(desc))
		return nil
	}

	s, ok := scales.ByName(name)
	if !ok {
		return fmt.Errorf("unknown scale %q (try 'tonality scales')", name)
	}
	pitches, err := s.Pitches(root)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(map[string]interface{}{
			"scale":   name,
			"root":    root.String(),
			"pitches": pitchNames(pitches),
		})
	}
	fmt.Printf("%s %s: %s\n", name, root, formatPitches(pitches))
	return nil
}

func runChords(cmd *cobra.Command, args []string) error {
	for _, name := range chords.Names() {
		fmt.Println(name)
	}
	return nil
}

func runChord(cmd *cobra.Command, args []string) error {
	root, err := parseRoot()
	if err != nil {
		return err
	}

	name := args[0]
	ch, ok := chords.ByName(name)
	if !ok {
		return fmt.Errorf("unknown chord %q (try 'tonality chords')", name)
	}
	pitches, err := ch.Pitches(root)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(map[string]interface{}{
			"chord":   name,
			"root":    root.String(),
			"pitches": pitchNames(pitches),
		})
	}
	fmt.Printf("%s %s: %s\n", name, root, formatPitches(pitches))
	return nil
}

func runSymbol(cmd *cobra.Command, args []string) error {
	sym, err := chords.ParseSymbol(args[0])
	if err != nil {
		return err
	}
	octave, err := theory.NewOctave(chordOctave)
	if err != nil {
		return err
	}
	pitches, err := sym.Voicing(octave)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s): %s\n", args[0], sym.Chord().Name(), formatPitches(pitches))
	return nil
}

func runTranspose(cmd *cobra.Command, args []string) error {
	pitch, err := theory.ParsePitch(args[0])
	if err != nil {
		return err
	}
	by, err := theory.ParseInterval(args[1])
	if err != nil {
		return err
	}
	result, err := pitch.Transpose(by)
	if err != nil {
		return err
	}
	fmt.Printf("%s + %s = %s (%d)\n", pitch, by, result, result.Semitones())
	return nil
}

func runIntervals(cmd *cobra.Command, args []string) error {
	for i := theory.PerfectUnison; i <= theory.PerfectOctave; i++ {
		fmt.Printf("%2d  %s\n", i.Semitones(), i)
	}
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	sym, err := chords.ParseSymbol(args[0])
	if err != nil {
		return err
	}
	octave, err := theory.NewOctave(chordOctave)
	if err != nil {
		return err
	}
	pitches, err := sym.Voicing(octave)
	if err != nil {
		return err
	}

	opts := midiseq.Options{Channel: midiChannel, Velocity: midiVelocity}
	render := midiseq.Stack
	if arpeggiate {
		render = midiseq.Sequence
	}
	msgs, err := render(pitches, opts)
	if err != nil {
		return err
	}

	for _, msg := range msgs {
		fmt.Printf("% X  %s\n", []byte(msg), msg)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
