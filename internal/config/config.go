package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus" mapstructure:"corpus"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// CorpusConfig configures the reference dataset source.
type CorpusConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// AnalysisConfig holds the threshold table driving the insight and
// evaluation rules. Every comparison in the rule set reads from here,
// nothing is hard-coded at the call sites.
type AnalysisConfig struct {
	MinSampleInsight int `yaml:"min_sample_insight" mapstructure:"min_sample_insight"`

	Similarity SimilarityConfig `yaml:"similarity" mapstructure:"similarity"`
	Quality    QualityConfig    `yaml:"quality" mapstructure:"quality"`
	Draft      DraftConfig      `yaml:"draft" mapstructure:"draft"`
	Cross      CrossConfig      `yaml:"cross" mapstructure:"cross"`
}

// SimilarityConfig configures the weighted similarity search.
type SimilarityConfig struct {
	TopN           int     `yaml:"top_n" mapstructure:"top_n"`
	WeightBudget   float64 `yaml:"weight_budget" mapstructure:"weight_budget"`
	WeightDays     float64 `yaml:"weight_days" mapstructure:"weight_days"`
	WeightVisitors float64 `yaml:"weight_visitors" mapstructure:"weight_visitors"`
	WeightArtists  float64 `yaml:"weight_artists" mapstructure:"weight_artists"`
}

// QualityConfig holds the deviation bands behind the qualitative
// adjective on a subset of insights.
type QualityConfig struct {
	Excellent float64 `yaml:"excellent" mapstructure:"excellent"` // above this: top band
	Good      float64 `yaml:"good" mapstructure:"good"`           // above this: second band; -good..good is average
}

// DraftConfig holds the deviation thresholds of the evaluation draft
// synthesizer.
type DraftConfig struct {
	Positive      float64 `yaml:"positive" mapstructure:"positive"`
	CostEfficient float64 `yaml:"cost_efficient" mapstructure:"cost_efficient"`
	Negative      float64 `yaml:"negative" mapstructure:"negative"`
	CostOverrun   float64 `yaml:"cost_overrun" mapstructure:"cost_overrun"`
	Improvement   float64 `yaml:"improvement" mapstructure:"improvement"`
	Confidence    float64 `yaml:"confidence" mapstructure:"confidence"`
}

// CrossConfig holds the paired deviation thresholds of the
// cross-metric conjunction rules.
type CrossConfig struct {
	BudgetBelow   float64 `yaml:"budget_below" mapstructure:"budget_below"`
	VisitorsAbove float64 `yaml:"visitors_above" mapstructure:"visitors_above"`
	BudgetAbove   float64 `yaml:"budget_above" mapstructure:"budget_above"`
	VisitorsBelow float64 `yaml:"visitors_below" mapstructure:"visitors_below"`
	PressBelow    float64 `yaml:"press_below" mapstructure:"press_below"`
}

// StoreConfig configures the run-history backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port      int     `yaml:"port" mapstructure:"port"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"` // requests per second
	RateBurst int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("EXHIBIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("corpus.path", "reference.xlsx")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "runs.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 5)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("analysis.min_sample_insight", 3)
	v.SetDefault("analysis.similarity.top_n", 5)
	v.SetDefault("analysis.similarity.weight_budget", 0.35)
	v.SetDefault("analysis.similarity.weight_days", 0.25)
	v.SetDefault("analysis.similarity.weight_visitors", 0.25)
	v.SetDefault("analysis.similarity.weight_artists", 0.15)
	v.SetDefault("analysis.quality.excellent", 30)
	v.SetDefault("analysis.quality.good", 10)
	v.SetDefault("analysis.draft.positive", 15)
	v.SetDefault("analysis.draft.cost_efficient", -10)
	v.SetDefault("analysis.draft.negative", -15)
	v.SetDefault("analysis.draft.cost_overrun", 15)
	v.SetDefault("analysis.draft.improvement", -20)
	v.SetDefault("analysis.draft.confidence", 0.8)
	v.SetDefault("analysis.cross.budget_below", -5)
	v.SetDefault("analysis.cross.visitors_above", 5)
	v.SetDefault("analysis.cross.budget_above", 10)
	v.SetDefault("analysis.cross.visitors_below", -5)
	v.SetDefault("analysis.cross.press_below", -10)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
