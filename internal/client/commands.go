package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kb-sync/models"
)

func (a *App) rootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           "kbsync",
		Short:         "Synchronize blog content with the knowledge base",
		Long:          "kbsync mirrors blog categories and posts into remote knowledge-base datasets and runs remote workflows.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to the JSON config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(a.versionCommand())
	cmd.AddCommand(a.migrateCommand(opts))
	cmd.AddCommand(a.syncCommand(opts))
	cmd.AddCommand(a.deletePostDocumentCommand(opts))
	cmd.AddCommand(a.workflowCommand(opts))

	return cmd
}

// withRuntime opens a Runtime for the duration of a single command and
// attaches its logger to the command context.
func (a *App) withRuntime(opts *Options, fn func(ctx context.Context, cmd *cobra.Command, rt *Runtime, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rt, err := a.open(cmd.Context(), opts)
		if err != nil {
			return err
		}
		defer func() {
			if rt.Close != nil {
				rt.Close()
			}
		}()

		ctx := rt.Logger.WithContext(cmd.Context())
		return fn(ctx, cmd, rt, args)
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.build.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", a.build.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", a.build.BuildCommit())
			return nil
		},
	}
}

func (a *App) migrateCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: a.withRuntime(opts, func(_ context.Context, cmd *cobra.Command, rt *Runtime, _ []string) error {
			if err := rt.Migrate(); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		}),
	}
}

func (a *App) syncCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push local content to the knowledge base",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "category <id>",
		Short: "Synchronize one category with its dataset",
		Args:  cobra.ExactArgs(1),
		RunE: a.withRuntime(opts, func(ctx context.Context, cmd *cobra.Command, rt *Runtime, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			rt.Services.SyncService.SyncCategory(ctx, id)

			state, err := rt.Services.ContentService.CategorySyncState(ctx, id)
			if err != nil {
				return err
			}
			return printState(cmd, "category", state)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "post <id>",
		Short: "Synchronize one post with its document",
		Args:  cobra.ExactArgs(1),
		RunE: a.withRuntime(opts, func(ctx context.Context, cmd *cobra.Command, rt *Runtime, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			rt.Services.SyncService.SyncPost(ctx, id)

			state, err := rt.Services.ContentService.PostSyncState(ctx, id)
			if err != nil {
				return err
			}
			return printState(cmd, "post", state)
		}),
	})

	var pendingOnly bool
	all := &cobra.Command{
		Use:   "all",
		Short: "Synchronize every category and post",
		Long:  "Synchronize every category and then every post. With --pending only entities that are unsynced or failed are pushed.",
		Args:  cobra.NoArgs,
		RunE: a.withRuntime(opts, func(ctx context.Context, cmd *cobra.Command, rt *Runtime, _ []string) error {
			tasks, err := rt.Services.ContentService.PendingTasks(ctx, !pendingOnly)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to sync")
				return nil
			}

			bar := progressbar.NewOptions(len(tasks),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("Syncing"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionClearOnFinish(),
			)

			// categories come first so posts find their dataset
			for _, task := range tasks {
				if err := ctx.Err(); err != nil {
					return err
				}
				rt.Services.SyncService.HandleSyncTask(ctx, task)
				bar.Add(1)
			}
			bar.Finish()

			failed, err := a.countFailed(ctx, rt, tasks)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "synced %d, failed %d\n", len(tasks)-failed, failed)
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d entities", ErrSyncFailed, failed, len(tasks))
			}
			return nil
		}),
	}
	all.Flags().BoolVar(&pendingOnly, "pending", false, "only sync unsynced or failed entities")
	cmd.AddCommand(all)

	return cmd
}

func (a *App) countFailed(ctx context.Context, rt *Runtime, tasks []models.SyncTask) (int, error) {
	failed := 0
	for _, task := range tasks {
		var (
			state models.SyncState
			err   error
		)
		switch task.Kind {
		case models.TaskCategorySync:
			state, err = rt.Services.ContentService.CategorySyncState(ctx, task.EntityID)
		default:
			state, err = rt.Services.ContentService.PostSyncState(ctx, task.EntityID)
		}
		if err != nil {
			return 0, err
		}
		if state.Status == models.SyncStatusFailed {
			failed++
		}
	}

	return failed, nil
}

func (a *App) deletePostDocumentCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-post-document <id>",
		Short: "Remove a post's document from the knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: a.withRuntime(opts, func(ctx context.Context, cmd *cobra.Command, rt *Runtime, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			rt.Services.SyncService.DeletePostFromKnowledgeBase(ctx, id)

			state, err := rt.Services.ContentService.PostSyncState(ctx, id)
			if err != nil {
				return err
			}
			return printState(cmd, "post", state)
		}),
	}
}

func (a *App) workflowCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Run remote workflows",
	}

	var (
		inputs  []string
		timeout time.Duration
	)
	run := &cobra.Command{
		Use:   "run",
		Short: "Run the workflow and print its outputs",
		Long: `Start a workflow run, wait until it finishes and print the outputs as JSON.

Example:
  kbsync workflow run --input query="what is new" --timeout 1m`,
		Args: cobra.NoArgs,
		RunE: a.withRuntime(opts, func(ctx context.Context, cmd *cobra.Command, rt *Runtime, _ []string) error {
			parsed, err := parseInputs(inputs)
			if err != nil {
				return err
			}

			outputs, err := rt.Services.WorkflowService.RunWorkflowAndWait(ctx, parsed, timeout)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(outputs))
			return nil
		}),
	}
	run.Flags().StringArrayVarP(&inputs, "input", "i", nil, "workflow input as key=value, repeatable")
	run.Flags().DurationVar(&timeout, "timeout", 0, "maximum time to wait, 0 uses the configured default")
	cmd.AddCommand(run)

	return cmd
}

func printState(cmd *cobra.Command, entity string, state models.SyncState) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %d: %s", entity, state.EntityID, state.Status)
	if state.RemoteID != "" {
		fmt.Fprintf(out, " (%s)", state.RemoteID)
	}
	fmt.Fprintln(out)

	if state.Status == models.SyncStatusFailed {
		return fmt.Errorf("%w: %s", ErrSyncFailed, state.Error)
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

func parseInputs(raw []string) (map[string]any, error) {
	inputs := make(map[string]any, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInput, kv)
		}
		inputs[key] = value
	}
	return inputs, nil
}
