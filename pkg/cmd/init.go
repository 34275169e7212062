package cmd

import (
	"github.com/spf13/cobra"
)

type args struct {
	version    string
	LogLevel   string
	ConfigPath string
	TextFormat bool
}

// InitCommands initializes and returns the root command for the application.
func InitCommands(version string) *cobra.Command {
	args := &args{
		version: version,
	}

	cmd := &cobra.Command{
		Use:   "waterlily",
		Short: "Waterlily survey client and server",
		Long:  "Waterlily is a multi-page questionnaire: answer the survey in the terminal and store the answers behind token authentication.",
	}

	cmd.PersistentFlags().StringVar(&args.ConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&args.LogLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&args.TextFormat, "logtext", false, "log in text format, otherwise JSON")

	cmd.AddCommand(
		credentialsCommand(args, "register", "Create an account and log in", runRegister),
		credentialsCommand(args, "login", "Log in with an existing account", runLogin),
		clientCommand(args, "logout", "Remove the stored session", runLogout),
		clientCommand(args, "whoami", "Show the logged-in user", runWhoami),
		clientCommand(args, "survey", "Answer the questionnaire", runSurvey),
		resultsCommand(args),
		serveCommand(args),
	)

	return cmd
}

type credentials struct {
	Username string
	Password string
}

func credentialsCommand(arg *args, use, short string, run func(*cobra.Command, *client, *credentials) error) *cobra.Command {
	creds := &credentials{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, arg, func(cl *client) error {
				return run(cmd, cl, creds)
			})
		},
	}

	cmd.Flags().StringVarP(&creds.Username, "username", "u", "", "username, prompted when empty")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "password, prompted when empty")

	return cmd
}

func clientCommand(arg *args, use, short string, run func(*cobra.Command, *client) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, arg, func(cl *client) error {
				return run(cmd, cl)
			})
		},
	}
}

func resultsCommand(arg *args) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the stored answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, arg, func(cl *client) error {
				return runResults(cmd, cl, userID)
			})
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id to show answers for, defaults to the logged-in user")

	return cmd
}

func serveCommand(arg *args) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the survey API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), arg)
		},
	}
}
