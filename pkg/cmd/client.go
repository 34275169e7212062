package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ksysoev/waterlily/pkg/core"
	"github.com/ksysoev/waterlily/pkg/prov"
	"github.com/ksysoev/waterlily/pkg/repo"
	"github.com/ksysoev/waterlily/pkg/tui"
	"github.com/spf13/cobra"
)

type client struct {
	svc *core.Service
	ui  *tui.UI
}

// withClient wires the survey service for a client command and runs it with a fresh request id on the context.
func withClient(cmd *cobra.Command, arg *args, run func(cl *client) error) error {
	if err := initLogger(arg); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	cfg, err := loadConfig(arg)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sessions := repo.New(cfg.Repo)
	defer func() { _ = sessions.Close() }()

	cl := &client{
		svc: core.New(cfg.Survey, sessions, prov.New(cfg.API)),
		ui:  tui.New(tui.WithOutput(cmd.OutOrStdout()), tui.WithAccessible(cfg.UI.Accessible)),
	}

	cmd.SetContext(withRequestID(cmd.Context()))

	return run(cl)
}

func withRequestID(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	// nolint:staticcheck // ContextHandler reads the request id by this key
	return context.WithValue(ctx, "req_id", uuid.New().String())
}

func (c *credentials) resolve(ctx context.Context, ui *tui.UI) (username, password string, err error) {
	if c.Username != "" && c.Password != "" {
		return c.Username, c.Password, nil
	}

	return ui.Credentials(ctx)
}

func runRegister(cmd *cobra.Command, cl *client, creds *credentials) error {
	ctx := cmd.Context()

	username, password, err := creds.resolve(ctx, cl.ui)
	if err != nil {
		return err
	}

	sess, err := cl.svc.Register(ctx, username, password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s (user id %d)\n", sess.Username, sess.UserID)

	return err
}

func runLogin(cmd *cobra.Command, cl *client, creds *credentials) error {
	ctx := cmd.Context()

	username, password, err := creds.resolve(ctx, cl.ui)
	if err != nil {
		return err
	}

	sess, err := cl.svc.Login(ctx, username, password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (user id %d)\n", sess.Username, sess.UserID)

	return err
}

func runLogout(cmd *cobra.Command, cl *client) error {
	if err := cl.svc.Logout(cmd.Context()); err != nil {
		return err
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

	return err
}

func runWhoami(cmd *cobra.Command, cl *client) error {
	user, err := cl.svc.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (user id %d)\n", user.Username, user.ID)

	return err
}

func runSurvey(cmd *cobra.Command, cl *client) error {
	err := cl.ui.Run(cmd.Context(), cl.svc)
	if errors.Is(err, tui.ErrAborted) {
		return nil
	}

	return err
}

func runResults(cmd *cobra.Command, cl *client, userID int64) error {
	ctx := cmd.Context()

	var (
		res *core.Results
		err error
	)

	if userID != 0 {
		res, err = cl.svc.ResultsFor(ctx, userID)
	} else {
		res, err = cl.svc.Results(ctx)
	}

	if errors.Is(err, core.ErrNotAuthenticated) {
		return err
	}

	cl.ui.PrintResults(res, err)

	if core.IsFetchError(err) {
		return err
	}

	return nil
}
