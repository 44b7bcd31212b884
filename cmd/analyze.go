package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/ai"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/ai/gemini"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/career"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/extract"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/logger"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/pipeline"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/secrets"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/store"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var savePrompt = promptui.Select{
	Label: "Persist this analysis?",
	Items: []string{PromptYes, PromptNo},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a transcript once and print the result as JSON",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("file", "f", "", "transcript file (pdf, docx or plain text); omit to read text from stdin")
	analyzeCmd.Flags().String("mime", "", "override the detected document type")
	analyzeCmd.Flags().String("grades", "", "JSON file with pre-structured grade rows instead of a transcript")
	analyzeCmd.Flags().String("user-email", "", "persist the result for the user with this email")
	analyzeCmd.Flags().Bool("companies", false, "also ask the configured AI provider for company recommendations")
	analyzeCmd.Flags().String("course", "BS Information Technology", "degree program to include in the AI profile")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before persisting")
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	record, err := runAnalysis(cmd, logger)
	if err != nil {
		logger.Fatal("analyzing transcript", zap.Error(err))
	}

	pretty, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		logger.Fatal("encoding analysis record", zap.Error(err))
	}
	fmt.Println(string(pretty))

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if wantCompanies, _ := cmd.Flags().GetBool("companies"); wantCompanies {
		course, _ := cmd.Flags().GetString("course")
		if err := recommendCompanies(ctx, config, course, record, logger); err != nil {
			logger.Warn("skipping company recommendations", zap.Error(err))
		}
	}

	email, _ := cmd.Flags().GetString("user-email")
	if email == "" {
		return
	}

	if err := persist(ctx, cmd, config, email, record, logger); err != nil {
		logger.Fatal("persisting analysis", zap.Error(err))
	}
}

func runAnalysis(cmd *cobra.Command, logger *zap.Logger) (*pipeline.Record, error) {
	analyzer := pipeline.New(logger)

	if gradesFile, _ := cmd.Flags().GetString("grades"); gradesFile != "" {
		data, err := os.ReadFile(gradesFile)
		if err != nil {
			return nil, fmt.Errorf("reading grades file: %w", err)
		}

		var grades []career.GradeInput
		if err := json.Unmarshal(data, &grades); err != nil {
			return nil, fmt.Errorf("decoding grades file: %w", err)
		}

		return analyzer.AnalyzeGrades(grades)
	}

	text, err := readTranscript(cmd)
	if err != nil {
		return nil, err
	}

	return analyzer.AnalyzeText(text)
}

func readTranscript(cmd *cobra.Command) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading transcript file: %w", err)
	}

	mime, _ := cmd.Flags().GetString("mime")
	if mime == "" {
		mime = mimeFromExtension(file)
	}

	return extract.Text(mime, data)
}

func mimeFromExtension(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".pdf":
		return extract.MimePDF
	case ".docx":
		return extract.MimeDocx
	default:
		return extract.MimePlain
	}
}

func persist(ctx context.Context, cmd *cobra.Command, config *Config, email string, record *pipeline.Record, logger *zap.Logger) error {
	if config == nil || config.Database == nil || config.Database.URL == "" {
		return errors.New("database url is required to persist (set database.url or DATABASE_URL)")
	}

	if auto, _ := cmd.Flags().GetBool("auto-approve"); !auto {
		_, action, err := savePrompt.Run()
		if err != nil {
			return err
		}
		if action != PromptYes {
			logger.Info("not persisting", zap.String("reason", "got no from prompt"))
			return nil
		}
	}

	db, err := store.Open(ctx, config.Database.URL)
	if err != nil {
		return fmt.Errorf("connecting to the database: %w", err)
	}
	defer db.Close()

	userID, err := store.New(db).GetUserIDByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("looking up user %q: %w", email, err)
	}

	if err := store.NewStore(db).SaveAnalysis(ctx, userID, record); err != nil {
		return err
	}

	logger.Info("analysis persisted",
		zap.String("user_email", email),
		zap.String("user_id", userID.String()),
	)
	return nil
}

func recommendCompanies(ctx context.Context, config *Config, course string, record *pipeline.Record, logger *zap.Logger) error {
	recommender, err := newRecommender(ctx, config, logger)
	if err != nil {
		return err
	}

	recs, err := recommender.RecommendCompanies(ctx, profileFromRecord(course, record))
	if err != nil {
		return err
	}

	pretty, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding company recommendations: %w", err)
	}
	fmt.Println(string(pretty))

	return nil
}

func newRecommender(ctx context.Context, config *Config, logger *zap.Logger) (ai.Recommender, error) {
	if config == nil || config.AI == nil || !config.AI.Enabled {
		return nil, errors.New("ai is not enabled in the configuration")
	}

	provider := strings.TrimSpace(strings.ToLower(config.AI.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.AI.Provider)
	}

	if config.AI.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.AI.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", config.AI.Gemini.Model),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model, config.AI.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewRecommender(generator, config.AI.Gemini.MaxLogLength, genLogger), nil
}

func profileFromRecord(course string, record *pipeline.Record) *ai.Profile {
	profile := &ai.Profile{
		Course: course,
		GPA:    record.AcademicMetrics.GPA,
	}

	if record.LearningArchetype != nil {
		profile.PrimaryArchetype = record.LearningArchetype.Primary
		profile.ArchetypeName = record.LearningArchetype.Name
	}

	for i, skill := range record.Skills {
		if i == 5 {
			break
		}
		profile.TopSkills = append(profile.TopSkills, skill.Skill)
	}
	for i, rec := range record.CareerRecommendations {
		if i == 5 {
			break
		}
		profile.CareerPaths = append(profile.CareerPaths, rec.Career)
	}

	return profile
}
