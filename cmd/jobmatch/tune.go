package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/jobmatch/internal/catalog"
	"github.com/jonathan/jobmatch/internal/export"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/session"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuneCmd = &cobra.Command{
	Use:   "tune [requirement.json]",
	Short: "Interactively adjust a job requirement and watch the match change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTune,
}

var tuneExportDir string

func init() {
	tuneCmd.Flags().StringVar(&tuneExportDir, "export-dir", ".", "Directory the export action writes to")
	rootCmd.AddCommand(tuneCmd)
}

// prompter abstracts the interactive prompts.
type prompter interface {
	Select(label string, items []string) (int, error)
	Input(label string, validate func(string) error) (string, error)
}

type promptuiPrompter struct{}

func (promptuiPrompter) Select(label string, items []string) (int, error) {
	p := promptui.Select{Label: label, Items: items, Size: 12}
	idx, _, err := p.Run()
	return idx, err
}

func (promptuiPrompter) Input(label string, validate func(string) error) (string, error) {
	p := promptui.Prompt{Label: label, Validate: validate}
	return p.Run()
}

// Tune menu actions
const (
	actionRequirements   = "Show requirements"
	actionSimulation     = "Apply simulation"
	actionRecommendation = "Apply recommendation"
	actionWage           = "Set hourly wage"
	actionPrefecture     = "Set prefecture"
	actionJobType        = "Set job type"
	actionSkills         = "Set skills"
	actionSummary        = "Show summary"
	actionExport         = "Export"
	actionQuit           = "Quit"
)

var tuneActions = []string{
	actionRequirements, actionSimulation, actionRecommendation, actionWage, actionPrefecture,
	actionJobType, actionSkills, actionSummary, actionExport, actionQuit,
}

type tuner struct {
	store     *session.Store
	id        uuid.UUID
	prompt    prompter
	printer   *observability.Printer
	out       io.Writer
	exportDir string
	now       func() time.Time
	log       *zap.Logger
}

func runTune(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	req, err := loadRequirement(path)
	if err != nil {
		return err
	}

	store := session.NewStore(nil)
	sess := store.Create(&req)

	t := &tuner{
		store:     store,
		id:        sess.ID,
		prompt:    promptuiPrompter{},
		printer:   observability.NewPrinter(cmd.OutOrStdout()),
		out:       cmd.OutOrStdout(),
		exportDir: tuneExportDir,
		now:       time.Now,
		log:       appLogger,
	}
	t.printer.PrintRequirements(sess.Requirements)
	return t.run()
}

// isAbort reports whether the user left the prompt with Ctrl-C or Ctrl-D.
func isAbort(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort)
}

func (t *tuner) run() error {
	for {
		sess, err := t.store.Get(t.id)
		if err != nil {
			return err
		}
		t.printer.PrintMatch(sess.MatchData, sess.PreviousMatchData)

		idx, err := t.prompt.Select("Action", tuneActions)
		if isAbort(err) {
			return nil
		}
		if err != nil {
			return err
		}

		action := tuneActions[idx]
		if action == actionQuit {
			return nil
		}

		if err := t.handle(action, sess); err != nil {
			if isAbort(err) {
				continue
			}
			return err
		}
	}
}

func (t *tuner) handle(action string, sess session.Session) error {
	switch action {
	case actionRequirements:
		t.printer.PrintRequirements(sess.Requirements)
		return nil
	case actionSimulation:
		return t.applySimulation(sess)
	case actionRecommendation:
		return t.applyRecommendation(sess)
	case actionWage:
		return t.setWage(sess)
	case actionPrefecture:
		return t.choose("Prefecture", catalog.PrefectureNames(), func(v string) types.Change {
			return types.PrefectureChange{From: sess.Requirements.WorkArea.Prefecture, To: v}
		})
	case actionJobType:
		return t.choose("Job type", catalog.MajorNames(), func(v string) types.Change {
			return types.JobTypeMajorChange{From: sess.Requirements.JobType.Major, To: v}
		})
	case actionSkills:
		return t.setSkills(sess)
	case actionSummary:
		text, err := export.Summary(sess.Requirements, sess.MatchData)
		if err != nil {
			return err
		}
		fmt.Fprintln(t.out, text)
		return nil
	case actionExport:
		return t.export(sess)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func (t *tuner) apply(changes ...types.Change) error {
	sess, err := t.store.Apply(t.id, changes...)
	if err != nil {
		return err
	}
	for _, c := range changes {
		t.log.Debug("change applied", zap.String("field", string(c.Field())), zap.Any("value", c.ProposedValue()))
	}
	t.printer.PrintSimulations(sess.Simulations)
	return nil
}

func (t *tuner) applySimulation(sess session.Session) error {
	if len(sess.Simulations) == 0 {
		fmt.Fprintln(t.out, "No improving changes available.")
		return nil
	}

	items := make([]string, len(sess.Simulations))
	for i, s := range sess.Simulations {
		items[i] = fmt.Sprintf("%s → %s (+%d, +%.1f%%)", s.Change.Field(),
			observability.FormatValue(s.Change.ProposedValue()), s.MatchIncrease, s.PercentageIncrease)
	}

	idx, err := t.prompt.Select("Simulation", items)
	if err != nil {
		return err
	}
	return t.apply(sess.Simulations[idx].Change)
}

func (t *tuner) applyRecommendation(sess session.Session) error {
	if len(sess.Recommendations) == 0 {
		fmt.Fprintln(t.out, "The match target is already reached.")
		return nil
	}

	items := make([]string, len(sess.Recommendations))
	for i, r := range sess.Recommendations {
		items[i] = fmt.Sprintf("[%s] %s → %s (+%.1f%%)", r.Priority, r.Change.Field(),
			observability.FormatValue(r.Change.ProposedValue()), r.PotentialIncrease)
	}

	idx, err := t.prompt.Select("Recommendation", items)
	if err != nil {
		return err
	}
	return t.apply(sess.Recommendations[idx].Change)
}

func (t *tuner) setWage(sess session.Session) error {
	input, err := t.prompt.Input(fmt.Sprintf("Hourly wage (%d-%d)", types.MinHourlyWage, types.MaxHourlyWage), func(s string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return errors.New("enter a whole number")
		}
		return nil
	})
	if err != nil {
		return err
	}

	wage, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("invalid wage %q: %w", input, err)
	}
	return t.apply(types.HourlyWageChange{From: sess.Requirements.HourlyWage, To: wage})
}

func (t *tuner) choose(label string, options []string, change func(string) types.Change) error {
	idx, err := t.prompt.Select(label, options)
	if err != nil {
		return err
	}
	return t.apply(change(options[idx]))
}

func (t *tuner) setSkills(sess session.Session) error {
	input, err := t.prompt.Input("Skills (comma separated)", nil)
	if err != nil {
		return err
	}
	return t.apply(types.SkillRequirementsChange{
		From: sess.Requirements.SkillRequirements,
		To:   splitList(input),
	})
}

// splitList splits on ASCII or ideographic commas, dropping empty entries.
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '、' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (t *tuner) export(sess session.Session) error {
	data, err := export.NewDocument(sess.Requirements, sess.MatchData, t.now()).MarshalIndent()
	if err != nil {
		return err
	}

	path := filepath.Join(t.exportDir, export.FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(t.out, "Exported to %s\n", path)
	return nil
}
