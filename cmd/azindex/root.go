package main

import (
	"fmt"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	azindex "github.com/ragulkarthick4/Azure-Search-index"
	"github.com/ragulkarthick4/Azure-Search-index/internal/api"
	"github.com/ragulkarthick4/Azure-Search-index/internal/cli"
	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
	"github.com/ragulkarthick4/Azure-Search-index/internal/fs"
	"github.com/ragulkarthick4/Azure-Search-index/internal/logging"
	"github.com/ragulkarthick4/Azure-Search-index/internal/parsing"
)

// processedAtFormat is the expected format of the --processed-at flag: a local-naive timestamp.
const processedAtFormat = "2006-01-02 15:04:05"

var (
	indexer cli.Service

	debug       bool
	insecure    bool
	searchHost  string
	indexName   string
	apiKey      string
	processedBy string
	processedAt string

	initializationErrors []error

	rootCmd = &cobra.Command{
		Use:               "azindex",
		Short:             "azindex converts pytest-html reports into search-index documents",
		Long:              descriptionAzindex,
		PersistentPreRunE: initCLIService,
		SilenceErrors:     true, // Errors are manually printed in 'main'
		SilenceUsage:      true, // Disables usage text on error
	}
)

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&searchHost, "search-host", "", "the host name of the search service (e.g. \"myservice.search.windows.net\")")
	flags.StringVar(&indexName, "index-name", "", "the name of the search index (default \"testindex\")")
	flags.StringVar(&apiKey, "api-key", "", "the admin key for the search service")
	flags.StringVar(&processedBy, "processed-by", "", "the user or system stamped into every index document (default: the current OS user)")
	flags.StringVar(&processedAt, "processed-at", "", "the processing timestamp, formatted as \"YYYY-MM-DD HH:MM:SS\" (default: now)")
	flags.BoolVar(&debug, "debug", false, "enable debug output")

	flags.BoolVar(&insecure, "insecure", false, "disable TLS for the search service")
	if err := flags.MarkHidden("insecure"); err != nil {
		initializationErrors = append(initializationErrors, err)
	}

	viper.SetEnvPrefix("AZINDEX")
	viper.AutomaticEnv()

	for _, name := range []string{
		"search-host", "index-name", "api-key", "processed-by", "processed-at", "debug", "insecure",
	} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			initializationErrors = append(initializationErrors, err)
		}
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// initCLIService builds the fully wired CLI service, including the search-service client.
func initCLIService(cmd *cobra.Command, args []string) error {
	indexerService, err := newServiceWithoutAPI()
	if err != nil {
		return err
	}

	apiClient, err := api.NewClient(api.ClientConfig{
		APIKey:    viper.GetString("api-key"),
		Debug:     viper.GetBool("debug"),
		Host:      viper.GetString("search-host"),
		IndexName: viper.GetString("index-name"),
		Insecure:  viper.GetBool("insecure"),
		Log:       indexerService.Log,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	indexerService.API = apiClient
	indexer = indexerService

	return nil
}

// unsafeInitParsingOnly builds the CLI service without a search-service client. It is "unsafe" in the sense
// that any command relying on the API will fail; it exists so that purely local commands don't require
// search-service credentials.
func unsafeInitParsingOnly(cmd *cobra.Command, args []string) error {
	indexerService, err := newServiceWithoutAPI()
	if err != nil {
		return err
	}

	indexer = indexerService
	return nil
}

func newServiceWithoutAPI() (cli.Service, error) {
	logger := logging.NewProductionLogger()
	if viper.GetBool("debug") {
		logger = logging.NewDebugLogger()
	}

	processingTime := time.Now()
	if value := viper.GetString("processed-at"); value != "" {
		parsed, err := time.ParseInLocation(processedAtFormat, value, time.Local)
		if err != nil {
			return cli.Service{}, errors.NewConfigurationError(
				"Unable to parse processing timestamp",
				fmt.Sprintf("The value %q does not match the expected format %q.", value, "YYYY-MM-DD HH:MM:SS"),
				"Provide --processed-at as a local timestamp, e.g. \"2025-07-30 21:01:11\".",
			)
		}

		processingTime = parsed
	}

	processedByValue := viper.GetString("processed-by")
	if processedByValue == "" {
		if currentUser, err := user.Current(); err == nil {
			processedByValue = currentUser.Username
		}
	}

	return cli.Service{
		Log:        logger,
		FileSystem: fs.Local{},
		ParseConfig: parsing.Config{
			ProcessorVersion: azindex.Version,
			ProcessedBy:      processedByValue,
			ProcessedAt:      processingTime.Format(processedAtFormat),
			Logger:           logger,
		},
		ProcessingTime: processingTime,
	}, nil
}
