package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coolbeans/costadvisor/pkg/advisory"
	"github.com/coolbeans/costadvisor/pkg/corpus"
	"github.com/coolbeans/costadvisor/pkg/costs"
	"github.com/coolbeans/costadvisor/pkg/relevance"
	"github.com/coolbeans/costadvisor/pkg/tables"
)

var version = "0.1.0"

var (
	flagTablesDir  string
	flagCorpusFile string
	flagVerbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "costadvisor",
		Short: "Singapore civil litigation cost estimation",
		Long: `Costadvisor estimates party-and-party costs for Singapore civil
litigation from the published tiered cost tables, and supports each
estimate with relevant costs jurisprudence.

It produces:
  - Cost estimates with a full step-by-step audit trail
  - Ranked supporting precedent with match explanations
  - Draft argument text grounded in the applicable guidance`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&flagTablesDir, "tables-dir", "", "directory of YAML cost table documents (default: built-in tables)")
	rootCmd.PersistentFlags().StringVar(&flagCorpusFile, "corpus", "", "YAML corpus file (default: built-in corpus)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(estimateCmd())
	rootCmd.AddCommand(precedentsCmd())
	rootCmd.AddCommand(tablesCmd())
	rootCmd.AddCommand(corpusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func loadTables() (*tables.Store, error) {
	if flagTablesDir == "" {
		return tables.DefaultStore(), nil
	}
	return tables.LoadDirectory(flagTablesDir)
}

func loadCorpus() (*corpus.Corpus, error) {
	if flagCorpusFile == "" {
		return corpus.Default(), nil
	}
	return corpus.LoadFile(flagCorpusFile)
}

func newFacade() (*advisory.Facade, error) {
	store, err := loadTables()
	if err != nil {
		return nil, fmt.Errorf("loading cost tables: %w", err)
	}
	caseLaw, err := loadCorpus()
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	ranker := relevance.NewEngine(caseLaw, relevance.DefaultRuleIndex())
	return advisory.New(costs.NewEngine(store), ranker, advisory.WithLogger(newLogger())), nil
}

func estimateCmd() *cobra.Command {
	var (
		courtLevel         string
		caseType           string
		claimAmount        string
		trialDays          int
		complexity         string
		applicationType    string
		trialCategory      string
		originatingAppType string
		appealLevel        string
		contested          bool
		hearingDuration    string
		settledBeforeTrial bool
		basisOfTaxation    string
		litigantInPerson   bool
		nonParty           bool
		solicitorCosts     bool
		asJSON             bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate party-and-party costs",
		Long: `Estimate party-and-party costs for a matter.

Examples:
  costadvisor estimate --case-type default_judgment_liquidated --amount 50000
  costadvisor estimate --case-type contested_trial --amount 300000 --trial-days 4 --complexity complex
  costadvisor estimate --application-type summary_judgment --contested`,
		RunE: func(cmd *cobra.Command, args []string) error {
			facade, err := newFacade()
			if err != nil {
				return err
			}

			fields := map[string]any{
				"court_level":          courtLevel,
				"case_type":            caseType,
				"claim_amount":         claimAmount,
				"complexity_level":     complexity,
				"application_type":     applicationType,
				"trial_category":       trialCategory,
				"originating_app_type": originatingAppType,
				"appeal_level":         appealLevel,
				"contested":            contested,
				"hearing_duration":     hearingDuration,
				"settled_before_trial": settledBeforeTrial,
				"basis_of_taxation":    basisOfTaxation,
				"litigant_in_person":   litigantInPerson,
				"non_party":            nonParty,
				"solicitor_costs":      solicitorCosts,
			}
			if cmd.Flags().Changed("trial-days") {
				fields["trial_days"] = trialDays
			}

			response := facade.Calculate(fields)
			if asJSON {
				return printJSON(response)
			}
			printResponse(response)
			return nil
		},
	}

	cmd.Flags().StringVar(&courtLevel, "court", "High Court", "court level (High Court, District Court, Magistrates Court)")
	cmd.Flags().StringVar(&caseType, "case-type", "", "case type for the general regime")
	cmd.Flags().StringVar(&claimAmount, "amount", "0", "claim amount in dollars")
	cmd.Flags().IntVar(&trialDays, "trial-days", 0, "expected trial duration in days")
	cmd.Flags().StringVar(&complexity, "complexity", "", "complexity level (simple, moderate, complex, very_complex)")
	cmd.Flags().StringVar(&applicationType, "application-type", "", "Practice Direction application type")
	cmd.Flags().StringVar(&trialCategory, "trial-category", "", "Practice Direction trial category")
	cmd.Flags().StringVar(&originatingAppType, "originating-app-type", "", "originating application type")
	cmd.Flags().StringVar(&appealLevel, "appeal-level", "", "appeal level")
	cmd.Flags().BoolVar(&contested, "contested", false, "application was contested")
	cmd.Flags().StringVar(&hearingDuration, "hearing-duration", "", "hearing duration (half_day, full_day)")
	cmd.Flags().BoolVar(&settledBeforeTrial, "settled-before-trial", false, "matter settled before trial")
	cmd.Flags().StringVar(&basisOfTaxation, "basis", "", "basis of taxation (standard, indemnity)")
	cmd.Flags().BoolVar(&litigantInPerson, "litigant-in-person", false, "party is a litigant in person")
	cmd.Flags().BoolVar(&nonParty, "non-party", false, "costs sought against a non-party")
	cmd.Flags().BoolVar(&solicitorCosts, "solicitor-costs", false, "solicitor-and-client costs in issue")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func precedentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precedents",
		Short: "Search and inspect the costs case-law corpus",
	}

	var maxResults int
	var asJSON bool

	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search precedents by free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			facade, err := newFacade()
			if err != nil {
				return err
			}
			matches := facade.SearchPrecedents(strings.Join(args, " "), maxResults)
			if asJSON {
				return printJSON(matches)
			}
			if len(matches) == 0 {
				fmt.Println("No matching precedents.")
				return nil
			}
			for i, match := range matches {
				fmt.Printf("%d. %s %s (score %.2f)\n", i+1,
					match.Case.ShortName, match.Case.Citation, match.RelevanceScore)
				for _, reason := range match.MatchReasons {
					fmt.Printf("   - %s\n", reason)
				}
			}
			return nil
		},
	}
	searchCmd.Flags().IntVar(&maxResults, "max-results", 5, "maximum number of results")
	searchCmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	showCmd := &cobra.Command{
		Use:   "show [case-id]",
		Short: "Show one precedent record in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseLaw, err := loadCorpus()
			if err != nil {
				return err
			}
			record, ok := caseLaw.LookupByID(args[0])
			if !ok {
				return fmt.Errorf("no precedent with case ID %q", args[0])
			}
			return printJSON(record)
		},
	}

	provisionCmd := &cobra.Command{
		Use:   "provision [provision]",
		Short: "List authorities interpreting a provision",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseLaw, err := loadCorpus()
			if err != nil {
				return err
			}
			records := caseLaw.LookupByProvision(strings.Join(args, " "))
			if len(records) == 0 {
				fmt.Println("No authorities found.")
				return nil
			}
			for _, record := range records {
				fmt.Printf("%s %s — %s\n", record.ShortName, record.Citation, record.Provision)
			}
			return nil
		},
	}

	cmd.AddCommand(searchCmd)
	cmd.AddCommand(showCmd)
	cmd.AddCommand(provisionCmd)
	return cmd
}

func tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the loaded cost table sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadTables()
			if err != nil {
				return err
			}

			fmt.Println("General regime categories:")
			var categories []string
			for category := range store.General {
				categories = append(categories, string(category))
			}
			sort.Strings(categories)
			for _, c := range categories {
				fmt.Printf("  - %s\n", c)
			}
			fmt.Println("  - contested_trial (duration-tiered)")

			printSection("Practice Direction applications:", sortedKeys(store.Applications))
			printSection("Practice Direction trial categories:", sortedKeys(store.TrialCategories))
			printSection("Originating applications:", sortedKeys(store.OriginatingApps))
			printSection("Appeal levels:", sortedKeys(store.Appeals))

			return nil
		},
	}
}

func corpusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corpus",
		Short: "Show corpus statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			caseLaw, err := loadCorpus()
			if err != nil {
				return err
			}
			return printJSON(caseLaw.Stats())
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printSection(title string, keys []string) {
	fmt.Println(title)
	for _, k := range keys {
		fmt.Printf("  - %s\n", k)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printResponse(response *advisory.CalculationResponse) {
	result := response.Result

	fmt.Printf("Estimate: $%s (range $%s - $%s)\n",
		result.TotalCosts.StringFixed(2),
		result.CostRangeMin.StringFixed(2),
		result.CostRangeMax.StringFixed(2))
	fmt.Printf("Basis:    %s\n", result.CalculationBasis)
	fmt.Printf("Confidence: %s\n\n", result.Confidence)

	fmt.Println("Calculation steps:")
	for i, step := range result.CalculationSteps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}

	if len(result.Assumptions) > 0 {
		fmt.Println("\nAssumptions:")
		for _, assumption := range result.Assumptions {
			fmt.Printf("  - %s\n", assumption)
		}
	}

	if len(result.CaseLaw) > 0 {
		fmt.Println("\nSupporting case law:")
		for _, precedent := range result.CaseLaw {
			fmt.Printf("  - %s %s (score %.2f)\n",
				precedent.ShortName, precedent.Citation, precedent.RelevanceScore)
		}
	}

	if response.ArgumentText != "" {
		fmt.Println("\nDraft argument:")
		fmt.Println(response.ArgumentText)
	}

	if len(response.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range response.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}
