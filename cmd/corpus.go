package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/kotext"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/similar"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and maintain the reference corpus",
	Long:  "Commands for summarizing the historical corpus, finding similar exhibitions, and appending new records.",
}

// -- corpus stats --

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-metric statistics of the corpus",
	RunE: func(cmd *cobra.Command, _ []string) error {
		corpusPath, _ := cmd.Flags().GetString("corpus")

		table, err := loadCorpus(corpusPath)
		if err != nil {
			return err
		}
		full := corpus.Derive(corpus.ExcludeSpecial(table))

		fmt.Printf("Corpus: %d exhibitions (%d comparable)\n\n", table.Len(), full.Len())
		formatCorpusStats(os.Stdout, full)
		return nil
	},
}

// -- corpus similar --

var corpusSimilarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Find historical exhibitions similar to a record",
	RunE: func(cmd *cobra.Command, _ []string) error {
		recordPath, _ := cmd.Flags().GetString("record")
		corpusPath, _ := cmd.Flags().GetString("corpus")
		top, _ := cmd.Flags().GetInt("top")

		rec, err := loadRecord(recordPath)
		if err != nil {
			return err
		}
		table, err := loadCorpus(corpusPath)
		if err != nil {
			return err
		}
		full := corpus.Derive(corpus.ExcludeSpecial(table))

		simCfg := cfg.Analysis.Similarity
		if top > 0 {
			simCfg.TopN = top
		}

		rows := similar.Find(full, rec, simCfg)
		if len(rows) == 0 {
			fmt.Fprintln(os.Stderr, "No similar exhibitions found.")
			return nil
		}

		formatSimilarTable(os.Stdout, rec, rows)
		return nil
	},
}

// -- corpus add --

var corpusAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a record to the reference spreadsheet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		recordPath, _ := cmd.Flags().GetString("record")
		corpusPath, _ := cmd.Flags().GetString("corpus")
		if corpusPath == "" {
			corpusPath = cfg.Corpus.Path
		}

		rec, err := loadRecord(recordPath)
		if err != nil {
			return err
		}
		if err := corpus.Append(corpusPath, rec); err != nil {
			return eris.Wrap(err, "corpus add")
		}

		fmt.Printf("Appended %q to %s\n", rec.Title, corpusPath)
		return nil
	},
}

func init() {
	corpusStatsCmd.Flags().String("corpus", "", "reference spreadsheet path (overrides config)")

	corpusSimilarCmd.Flags().String("record", "", "path to the exhibition record (YAML or JSON)")
	corpusSimilarCmd.Flags().String("corpus", "", "reference spreadsheet path (overrides config)")
	corpusSimilarCmd.Flags().Int("top", 0, "number of similar exhibitions (0=use config default)")
	_ = corpusSimilarCmd.MarkFlagRequired("record")

	corpusAddCmd.Flags().String("record", "", "path to the exhibition record (YAML or JSON)")
	corpusAddCmd.Flags().String("corpus", "", "reference spreadsheet path (overrides config)")
	_ = corpusAddCmd.MarkFlagRequired("record")

	corpusCmd.AddCommand(corpusStatsCmd)
	corpusCmd.AddCommand(corpusSimilarCmd)
	corpusCmd.AddCommand(corpusAddCmd)
	rootCmd.AddCommand(corpusCmd)
}

// formatCorpusStats writes a per-metric statistics table to out.
func formatCorpusStats(out io.Writer, t *corpus.Table) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "METRIC\tN\tMEAN\tMEDIAN\tMIN\tMAX")
	_, _ = fmt.Fprintln(w, "------\t-\t----\t------\t---\t---")

	for _, f := range model.AllFields {
		s := t.Stats(f)
		if s == nil {
			continue
		}
		unit := f.Unit()
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			f.Label(),
			s.Count,
			kotext.FormatValue(s.Mean, unit),
			kotext.FormatValue(s.Median, unit),
			kotext.FormatValue(s.Min, unit),
			kotext.FormatValue(s.Max, unit),
		)
	}
	_ = w.Flush()
}

// formatSimilarTable writes the side-by-side comparison to out. The
// current record occupies the first row.
func formatSimilarTable(out io.Writer, rec model.Record, rows []model.SimilarRow) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "전시\t유사도"
	for _, f := range similar.ComparisonFields {
		header += "\t" + f.Label()
	}
	_, _ = fmt.Fprintln(w, header)

	title := rec.Title
	if title == "" {
		title = "(현재 전시)"
	}
	line := title + "\t-"
	for _, f := range similar.ComparisonFields {
		line += "\t" + kotext.FormatNumber(rec.Metric(f), f.Unit())
	}
	_, _ = fmt.Fprintln(w, line)

	for _, r := range rows {
		line := fmt.Sprintf("%s\t%.0f%%", r.Title, r.Similarity*100)
		for _, f := range similar.ComparisonFields {
			if v, ok := r.Metrics[f]; ok {
				line += "\t" + kotext.FormatValue(v, f.Unit())
			} else {
				line += "\tN/A"
			}
		}
		_, _ = fmt.Fprintln(w, line)
	}
	_ = w.Flush()
}
