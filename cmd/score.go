package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/advisor"
	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/questionbank"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers.json>",
	Short: "Score a saved answer list without the interactive UI",
	Long: `Score reads a JSON array of answers, for example

  [{"questionId": "interest_1", "answer": 4, "section": "psychometric"},
   {"questionId": "knowledge_1", "answer": "Return Merchandise Authorization"}]

and prints the results. A missing section is filled from the question bank.
Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.Bool("json", false, "Print the export report as JSON")
	f.StringP("out", "o", "", "Also write the export report to this file")
	f.Bool("strict", false, "Reject unknown questions and answers that do not fit their question")
	f.Bool("advise", false, "Add career advice (uses the configured LLM, offline otherwise)")
	f.Bool("archive", false, "Save the result to history when every question is answered")
}

// scoreOutput is the --json document when advice is requested.
type scoreOutput struct {
	Report report.Report  `json:"report"`
	Advice advisor.Advice `json:"advice"`
}

func runScore(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	out, _ := cmd.Flags().GetString("out")
	strict, _ := cmd.Flags().GetBool("strict")
	advise, _ := cmd.Flags().GetBool("advise")
	archive, _ := cmd.Flags().GetBool("archive")

	bank, err := loadBank()
	if err != nil {
		return err
	}

	answers, err := readAnswers(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	if err := prepareAnswers(bank, answers, strict); err != nil {
		return err
	}
	nav := collectAnswers(bank, answers)
	if dup := len(answers) - len(nav.Answers()); dup > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d repeated answers replaced by the later one\n", dup)
	}
	answers = nav.Answers()

	res := scoring.Compute(answers, bank, rt.cfg.Scorer())
	rep := report.New(res, time.Now())
	rt.log.Info("scored answers",
		zap.String("source", args[0]),
		zap.Int("answers", len(answers)),
		zap.Int("overall", res.OverallConfidence))

	var st *store.Store
	if advise || archive {
		if st, err = openStore(); err != nil {
			return err
		}
		defer st.Close()
	}

	if archive {
		if err := archiveScored(cmd, st, nav, rep); err != nil {
			return err
		}
	}

	var adv *advisor.Advice
	if advise {
		a := newAdvisor(cmd.Context(), st.EventRepo())
		if a.Available() {
			adv, err = a.Advise(cmd.Context(), res)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "AI advice failed, using offline advice:", err)
				adv = nil
			}
		}
		if adv == nil {
			offline := advisor.Offline(res)
			adv = &offline
		}
	}

	if out != "" {
		if err := rep.WriteFile(out); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Report written to", out)
	}

	w := cmd.OutOrStdout()
	if asJSON {
		var doc any = rep
		if adv != nil {
			doc = scoreOutput{Report: rep, Advice: *adv}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	printResults(w, res)
	if adv != nil {
		fmt.Fprintln(w)
		printAdvice(w, *adv)
	}
	return nil
}

func readAnswers(path string, stdin io.Reader) ([]assessment.Answer, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	var answers []assessment.Answer
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return answers, nil
}

// prepareAnswers fills missing sections from the bank and, when strict,
// rejects answers to unknown questions or of the wrong shape.
func prepareAnswers(bank *questionbank.Bank, answers []assessment.Answer, strict bool) error {
	var problems []string
	for i := range answers {
		a := &answers[i]
		q, ok := bank.Lookup(a.QuestionID)
		if a.Section == "" {
			a.Section = bank.SectionID(a.QuestionID)
		}
		if !strict {
			continue
		}
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown question %q", a.QuestionID))
			continue
		}
		if err := assessment.CheckAnswer(q, a.Value); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d invalid answers:\n  %s", len(problems), strings.Join(problems, "\n  "))
	}
	return nil
}

// collectAnswers records answers on a fresh Navigator, so a question
// answered twice keeps its first position and its last value.
func collectAnswers(bank *questionbank.Bank, answers []assessment.Answer) *assessment.Navigator {
	nav := assessment.New(bank)
	for _, a := range answers {
		nav.RecordAnswer(a)
	}
	return nav
}

// archiveScored saves a result whose answers cover the whole bank.
func archiveScored(cmd *cobra.Command, st *store.Store, nav *assessment.Navigator, rep report.Report) error {
	bank, answers := nav.Bank(), nav.Answers()
	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = true
	}
	for _, sec := range bank.Sections() {
		for _, q := range sec.Questions {
			if !answered[q.ID] {
				return fmt.Errorf("cannot archive: %w (no answer to %s)", report.ErrIncomplete, q.ID)
			}
		}
	}

	rec := &store.ArchivedReport{
		RunID:     nav.ID(),
		AnswerKey: rt.cfg.Scoring.AnswerKey,
		Answers:   answers,
		Report:    rep,
	}
	reports := st.ReportRepo()
	if err := reports.Save(cmd.Context(), rec); err != nil {
		return fmt.Errorf("archive report: %w", err)
	}
	if keep := rt.cfg.Archive.Keep; keep > 0 {
		if _, err := reports.Prune(cmd.Context(), keep); err != nil {
			return fmt.Errorf("prune archive: %w", err)
		}
	}
	rt.log.Info("report archived", zap.String("id", rec.ID))
	fmt.Fprintln(cmd.ErrOrStderr(), "Saved to history as", rec.ID)
	return nil
}

func printResults(w io.Writer, r scoring.Results) {
	sep := strings.Repeat("─", 48)

	fmt.Fprintln(w, r.Recommendation.Title())
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "Overall confidence:    %d%%\n", r.OverallConfidence)
	fmt.Fprintln(w, r.Recommendation.Description())
	fmt.Fprintln(w)

	wis := r.WISCAR
	for _, row := range []struct {
		label string
		score int
	}{
		{"Psychological fit", r.PsychologicalFit},
		{"Technical readiness", r.TechnicalReadiness},
		{"Will", wis.Will},
		{"Interest", wis.Interest},
		{"Skill", wis.Skill},
		{"Cognitive readiness", wis.Cognitive},
		{"Ability to learn", wis.Ability},
		{"Real-world alignment", wis.RealWorld},
	} {
		fmt.Fprintf(w, "%-22s %3d\n", row.label, row.score)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Skill gaps")
	fmt.Fprintln(w, sep)
	if len(r.SkillGaps) == 0 {
		fmt.Fprintln(w, "None")
	}
	for i, gap := range r.SkillGaps {
		course := ""
		if i < len(r.LearningPath) {
			course = " -> " + r.LearningPath[i]
		}
		fmt.Fprintf(w, "- %s%s\n", gap, course)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Career matches")
	fmt.Fprintln(w, sep)
	for _, c := range r.CareerMatches {
		fmt.Fprintf(w, "- %s\n", c)
	}
}

func printAdvice(w io.Writer, a advisor.Advice) {
	title := "Advice (offline)"
	if a.Source == advisor.SourceLLM {
		title = "Advice (" + a.Model + ")"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", 48))
	fmt.Fprintln(w, a.Summary)
	for _, s := range a.Strengths {
		fmt.Fprintf(w, "+ %s\n", s)
	}
	for i, s := range a.NextSteps {
		fmt.Fprintf(w, "%d. %s\n", i+1, s)
	}
	if a.SuggestedRole != "" {
		fmt.Fprintf(w, "Suggested first role: %s\n", a.SuggestedRole)
	}
}
