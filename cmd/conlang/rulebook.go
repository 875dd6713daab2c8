package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/conlang-backend/internal/config"
	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/rulebook"
)

// Rulebook commands never touch the database, so without --config they run
// with the built-in engine limits.
func (o *options) engineConfig() (config.EngineConfig, error) {
	if o.configPath == "" {
		return config.DefaultEngine(), nil
	}
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return config.EngineConfig{}, err
	}
	return cfg.Engine, nil
}

type elementOutput struct {
	Matched string `json:"matched"`
	Phoneme string `json:"phoneme"`
	RuleID  int64  `json:"rule_id"`
}

type wordOutput struct {
	Word     string          `json:"word"`
	Phoneme  string          `json:"phoneme"`
	Outcome  string          `json:"outcome"`
	Elements []elementOutput `json:"elements"`
}

type pronounceOutput struct {
	Kind    string       `json:"kind"`
	Phoneme string       `json:"phoneme"`
	Words   []wordOutput `json:"words"`
}

func pronounceCmd(opts *options) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "pronounce <rulebook> <text>...",
		Short: "Pronounce text with a rulebook's guide",
		Long: `pronounce renders whitespace separated text with the pronunciation guide
(or --kind romanization). Words the rules cannot consume are left out of
the rendering and reported on stderr.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := rulebook.Load(args[0])
			if err != nil {
				return err
			}
			engineCfg, err := opts.engineConfig()
			if err != nil {
				return err
			}
			k := domain.GuideKind(strings.ToUpper(kind))
			engine, err := rb.PronunciationEngine(k, engineCfg)
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			phoneme, results := engine.Pronounce(text)
			words := strings.Fields(text)

			out := pronounceOutput{Kind: k.String(), Phoneme: phoneme, Words: make([]wordOutput, len(results))}
			for i, res := range results {
				w := wordOutput{Word: words[i], Phoneme: res.Phoneme(), Outcome: res.Outcome.String(), Elements: []elementOutput{}}
				for _, e := range res.Elements {
					w.Elements = append(w.Elements, elementOutput{Matched: e.Matched, Phoneme: e.Phoneme, RuleID: e.RuleID})
				}
				out.Words[i] = w
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), phoneme)
			for _, w := range out.Words {
				if w.Outcome != domain.OutcomeMatched.String() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", w.Word, w.Outcome)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "pronunciation", "Guide: pronunciation or romanization")
	return cmd
}

type cellOutput struct {
	Combination string `json:"combination"`
	Label       string `json:"label"`
	Mandatory   bool   `json:"mandatory"`
	Value       string `json:"value"`
	Source      string `json:"source"`
	RuleID      int64  `json:"rule_id,omitempty"`
}

type declineOutput struct {
	Word       string             `json:"word"`
	Cells      []cellOutput       `json:"cells"`
	Violations []domain.Violation `json:"violations"`
}

func declineCmd(opts *options) *cobra.Command {
	var (
		combination string
		typeName    string
	)

	cmd := &cobra.Command{
		Use:   "decline <rulebook> <word>",
		Short: "Print the paradigm of a word",
		Long: `decline prints every unsuppressed paradigm cell of a word listed in the
rulebook, or one cell with --combination (",11,12," or "11,12").
Words missing from the rulebook can be declined with --type.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := rulebook.Load(args[0])
			if err != nil {
				return err
			}
			engineCfg, err := opts.engineConfig()
			if err != nil {
				return err
			}

			word, forms, ok := rb.FindWord(args[1])
			if typeName != "" {
				pos, found := rb.PartOfSpeechByName(typeName)
				if !found {
					return fmt.Errorf("--type: no part of speech named %q", typeName)
				}
				if !ok {
					word = domain.Word{Value: args[1], Classes: map[int64]int64{}}
				}
				word.TypeID = &pos.ID
			} else if !ok {
				return fmt.Errorf("word %q is not in the rulebook; pass --type to decline it anyway", args[1])
			}

			var typeID int64
			if word.TypeID != nil {
				typeID = *word.TypeID
			}
			engine, err := rb.DeclensionEngine(typeID, engineCfg)
			if err != nil {
				return err
			}

			if combination != "" {
				form := engine.Decline(word, forms, domain.ParseCombinationID(combination))
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), form)
				}
				fmt.Fprintln(cmd.OutOrStdout(), form.Value)
				return nil
			}

			out := declineOutput{Word: word.Value, Cells: []cellOutput{}, Violations: engine.RequirementsMet(word, forms)}
			for _, c := range engine.Paradigm(word, forms) {
				out.Cells = append(out.Cells, cellOutput{
					Combination: c.Combination.ID.String(),
					Label:       c.Combination.Label,
					Mandatory:   c.Combination.Mandatory,
					Value:       c.Form.Value,
					Source:      c.Form.Source.String(),
					RuleID:      c.Form.RuleID,
				})
			}
			if out.Violations == nil {
				out.Violations = []domain.Violation{}
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range out.Cells {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Label, c.Value, strings.ToLower(c.Source))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			for _, v := range out.Violations {
				fmt.Fprintf(cmd.ErrOrStderr(), "missing: %s\n", v.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&combination, "combination", "", "Decline a single combination")
	cmd.Flags().StringVar(&typeName, "type", "", "Part of speech for a word missing from the rulebook")
	return cmd
}

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <rulebook>",
		Short: "Validate a rulebook and run its words through the engines",
		Long: `check reports configuration errors, lookaround usage, deprecated rules and
forms, unparseable words and unmet mandatory combinations. It exits
non-zero when any finding is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := rulebook.Load(args[0])
			if err != nil {
				return err
			}
			engineCfg, err := opts.engineConfig()
			if err != nil {
				return err
			}

			findings := rb.Check(engineCfg)
			if opts.jsonOutput {
				if findings == nil {
					findings = rulebook.Findings{}
				}
				if err := writeJSON(cmd.OutOrStdout(), findings); err != nil {
					return err
				}
			} else {
				for _, f := range findings {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d errors, %d warnings\n",
					rb.Name, findings.Count(rulebook.SeverityError), findings.Count(rulebook.SeverityWarning))
			}

			if findings.HasErrors() {
				return fmt.Errorf("check failed: %d errors", findings.Count(rulebook.SeverityError))
			}
			return nil
		},
	}
}
