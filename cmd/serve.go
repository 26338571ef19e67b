package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/analysis"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		table, err := loadCorpus("")
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		engine := analysis.New(cfg.Analysis)
		mux := buildServeMux(engine, table, st)

		limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
		handler := rateLimit(limiter, mux)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: handler,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server",
			zap.Int("port", port),
			zap.Int("corpus_size", table.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// analyzeRequest is the POST /api/analyze body: the record as a generic
// field→value map plus control options.
type analyzeRequest struct {
	Record map[string]any `json:"record"`
	Save   bool           `json:"save"`
}

func buildServeMux(engine *analysis.Engine, table *corpus.Table, st store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /api/analyze", func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if len(req.Record) == 0 {
			http.Error(w, `{"error":"record is required"}`, http.StatusBadRequest)
			return
		}

		rec := model.FromMap(req.Record)
		result, err := engine.Analyze(r.Context(), rec, table, rec.Type)
		if err != nil {
			zap.L().Error("analysis failed",
				zap.String("title", rec.Title),
				zap.Error(err),
			)
			http.Error(w, `{"error":"analysis failed"}`, http.StatusInternalServerError)
			return
		}

		resp := map[string]any{"result": result}
		if req.Save {
			run, err := st.SaveRun(r.Context(), rec.Title, rec.Type, result)
			if err != nil {
				zap.L().Error("save run failed",
					zap.String("title", rec.Title),
					zap.Error(err),
				)
				http.Error(w, `{"error":"save failed"}`, http.StatusInternalServerError)
				return
			}
			resp["run_id"] = run.ID
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	mux.HandleFunc("GET /api/runs", func(w http.ResponseWriter, r *http.Request) {
		runs, err := st.ListRuns(r.Context(), store.RunFilter{
			Title: r.URL.Query().Get("title"),
		})
		if err != nil {
			http.Error(w, `{"error":"list failed"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"runs": runs})
	})

	mux.HandleFunc("GET /api/runs/{id}", func(w http.ResponseWriter, r *http.Request) {
		run, err := st.GetRun(r.Context(), r.PathValue("id"))
		if err != nil {
			http.Error(w, `{"error":"run not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(run)
	})

	return mux
}

// rateLimit rejects requests above the configured rate with 429.
func rateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
