package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/analysis"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/kotext"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run comparative analysis for an exhibition record",
	Long: `Compare one exhibition's operating statistics against the historical
reference corpus and generate insights, evaluation drafts, and a
similar-exhibition comparison.

The record file is YAML or JSON keyed by canonical field names
(visitors_total, budget_total, ...). Missing metrics are fine: anything
absent simply produces no insight.

Examples:
  # Analyze against the configured corpus
  analyze --record exhibition.yaml

  # Override the corpus and keep the top 3 similar exhibitions
  analyze --record exhibition.yaml --corpus ref.xlsx --top 3

  # Machine-readable output, persisted for later review
  analyze --record exhibition.yaml --format json --output result.json --save`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.String("record", "", "path to the current exhibition record (YAML or JSON)")
	f.String("corpus", "", "reference spreadsheet path (overrides config)")
	f.Float64("type", -1, "exhibition type override (0=special exhibition)")
	f.Int("top", 0, "number of similar exhibitions to report (0=use config default)")
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", "table", "output format: table, json, or csv")
	f.Bool("save", false, "save the run to the configured store")
	_ = analyzeCmd.MarkFlagRequired("record")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recordPath, _ := cmd.Flags().GetString("record")
	corpusPath, _ := cmd.Flags().GetString("corpus")
	typeOverride, _ := cmd.Flags().GetFloat64("type")
	top, _ := cmd.Flags().GetInt("top")
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")

	if format != "table" && format != "json" && format != "csv" {
		return eris.Errorf("analyze: --format must be table, json, or csv (got %q)", format)
	}

	rec, err := loadRecord(recordPath)
	if err != nil {
		return err
	}
	if typeOverride >= 0 {
		rec.Type = &typeOverride
	}

	table, err := loadCorpus(corpusPath)
	if err != nil {
		return err
	}

	analysisCfg := cfg.Analysis
	if top > 0 {
		analysisCfg.Similarity.TopN = top
	}

	log := zap.L().With(zap.String("command", "analyze"))
	log.Info("starting analysis",
		zap.String("title", rec.Title),
		zap.Int("corpus_size", table.Len()),
	)

	engine := analysis.New(analysisCfg)
	result, err := engine.Analyze(ctx, rec, table, rec.Type)
	if err != nil {
		return eris.Wrap(err, "analyze")
	}

	if err := outputResult(rec, result, format, outputPath); err != nil {
		return err
	}

	if save {
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		run, err := st.SaveRun(ctx, rec.Title, rec.Type, result)
		if err != nil {
			return eris.Wrap(err, "analyze: save run")
		}
		fmt.Printf("Run saved: %s\n", run.ID)
	}

	return nil
}

func outputResult(rec model.Record, result *model.Result, format, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "analyze: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "csv":
		return writeInsightCSV(w, result.Insights)
	case "table":
		return writeResultTable(w, rec, result)
	default:
		return eris.Errorf("analyze: unsupported format %q", format)
	}
}

func writeInsightCSV(w io.Writer, insights []model.Insight) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"category", "section", "title", "metric", "current", "reference_avg", "rank", "total", "priority", "text"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "analyze: write CSV header")
	}

	for _, ins := range insights {
		row := []string{
			string(ins.Category),
			string(ins.Section),
			ins.Title,
			ins.MetricName,
			formatOptFloat(ins.CurrentValue),
			formatOptFloat(ins.ReferenceAvg),
			formatOptInt(ins.Rank),
			formatOptInt(ins.TotalCount),
			fmt.Sprintf("%d", ins.Priority),
			ins.Text,
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "analyze: write CSV row")
		}
	}
	return nil
}

func writeResultTable(w io.Writer, rec model.Record, result *model.Result) error {
	title := rec.Title
	if title == "" {
		title = "(제목 없음)"
	}
	fmt.Fprintf(w, "전시: %s\n", title)
	fmt.Fprintf(w, "비교 기준: %s 평균\n", result.GroupLabel)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	grouped := result.ByCategory()
	for _, cat := range model.CategoryOrder {
		insights := grouped[cat]
		if len(insights) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n[%s]\n", model.CategoryLabels[cat])
		for _, ins := range insights {
			fmt.Fprintf(w, "  • %s (우선순위 %d)\n", ins.Title, ins.Priority)
			fmt.Fprintf(w, "    %s\n", ins.Text)
		}
	}

	if len(result.Drafts) > 0 {
		fmt.Fprintf(w, "\n[평가 초안]\n")
		for _, d := range result.Drafts {
			fmt.Fprintf(w, "  • (%s) %s\n", draftTypeLabel(d.Type), d.Text)
		}
	}

	if len(result.Similar) > 0 {
		fmt.Fprintf(w, "\n[유사 전시]\n")
		for i, s := range result.Similar {
			fmt.Fprintf(w, "  %d. %s (유사도 %.0f%%)\n", i+1, s.Title, s.Similarity*100)
			if v, ok := s.Metrics[model.FieldVisitorsTotal]; ok {
				fmt.Fprintf(w, "     총 관객수 %s, ", kotext.FormatValue(v, "명"))
			}
			if v, ok := s.Metrics[model.FieldBudgetTotal]; ok {
				fmt.Fprintf(w, "총 사용 예산 %s\n", kotext.FormatValue(v, "원"))
			} else {
				fmt.Fprintln(w)
			}
		}
	}

	printResultSummary(w, result)
	return nil
}

func draftTypeLabel(t model.EvalType) string {
	switch t {
	case model.EvalPositive:
		return "성과"
	case model.EvalNegative:
		return "보완"
	case model.EvalImprovement:
		return "개선"
	}
	return string(t)
}

func printResultSummary(w io.Writer, result *model.Result) {
	fmt.Fprintf(w, "\n--- Summary ---\n")
	fmt.Fprintf(w, "Insights:   %d\n", len(result.Insights))
	fmt.Fprintf(w, "Drafts:     %d\n", len(result.Drafts))
	fmt.Fprintf(w, "Similar:    %d\n", len(result.Similar))
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatOptInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}
