package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	client "github.com/denoise-ai/denoise/client"
	"github.com/denoise-ai/denoise/client/internal/config"
)

var serviceURL string
var debug bool

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "denoise",
		Short: "deNoise CLI for personalized news chat, reports, and podcasts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("DENOISE_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(config.Load().LogLevel)
			}
		},
	}

	cfg := config.Load()
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", cfg.ServiceURL, "Base URL of the deNoise backend")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newNewsCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newPodcastCmd())
	rootCmd.AddCommand(newClearSessionCmd())

	return rootCmd
}

// session bundles the SDK pieces every command needs: the client, the auth
// manager, and the transient state kept in lockstep by the session sync
// controller.
type session struct {
	client *client.Client
	auth   *client.Auth
	state  *client.State
}

// newSession wires client, state, session sync, and auth the way a page
// layer would: the sync controller watches identity changes, then the
// persisted identity is restored, which purges the arriving session (the
// transcript in this process is necessarily empty).
func newSession() (*session, error) {
	c := client.New(serviceURL)
	state := client.NewState()
	sync := client.NewSessionSync(c, state)

	auth, err := client.NewAuth(c, config.Load().UserFile)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	auth.Watch(sync.Observe)
	auth.Restore()

	return &session{client: c, auth: auth, state: state}, nil
}

// close flushes pending detached purges for the given user ids before the
// process exits, then stops the executor.
func (s *session) close(ctx context.Context, userIDs ...string) {
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		if err := s.client.Flush(ctx, id); err != nil {
			log.Warn().Err(err).Str("user_id", id).Msg("flush failed")
		}
	}
	_ = s.client.Close()
}

// requireUser returns the signed-in identity or an error telling the user
// to log in first.
func (s *session) requireUser() (*client.Identity, error) {
	u := s.auth.Current()
	if u == nil {
		return nil, fmt.Errorf("not signed in; run 'denoise login --email <email>' first")
	}
	return u, nil
}

func newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in (or register) with an email address",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			u, err := s.auth.SignIn(ctx, email)
			if err != nil {
				s.close(ctx)
				return err
			}
			s.close(ctx, u.ID)

			name := u.DisplayName
			if name == "" {
				name = u.Email
			}
			fmt.Printf("Signed in as %s (%s)\n", name, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and purge the server-side session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			u := s.auth.Current()
			if u == nil {
				s.close(ctx)
				fmt.Println("Already signed out")
				return nil
			}
			s.auth.SignOut()
			s.close(ctx, u.ID)
			fmt.Printf("Signed out %s\n", u.Email)
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close(cmd.Context())

			u := s.auth.Current()
			if u == nil {
				fmt.Println("Signed out")
				return nil
			}
			fmt.Printf("%s (%s)\n", u.Email, u.ID)
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the user profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored display name and system instructions",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close(cmd.Context())

			u, err := s.requireUser()
			if err != nil {
				return err
			}
			fmt.Printf("Email:        %s\n", u.Email)
			fmt.Printf("Display name: %s\n", u.DisplayName)
			fmt.Printf("Instructions: %s\n", u.SystemInstructions)
			return nil
		},
	}

	var displayName, instructions string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update display name and/or system instructions",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			defer s.close(ctx)

			if _, err := s.requireUser(); err != nil {
				return err
			}

			var upd client.ProfileUpdate
			if cmd.Flags().Changed("display-name") {
				upd.DisplayName = &displayName
			}
			if cmd.Flags().Changed("instructions") {
				upd.SystemInstructions = &instructions
			}
			if upd.DisplayName == nil && upd.SystemInstructions == nil {
				return fmt.Errorf("nothing to update; pass --display-name and/or --instructions")
			}

			if err := s.auth.UpdateProfile(ctx, upd); err != nil {
				return err
			}
			fmt.Println("Profile saved")
			return nil
		},
	}
	setCmd.Flags().StringVar(&displayName, "display-name", "", "Display name")
	setCmd.Flags().StringVar(&instructions, "instructions", "", "Free-text system instructions")

	profileCmd.AddCommand(showCmd)
	profileCmd.AddCommand(setCmd)
	return profileCmd
}

func newChatCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Send one chat message and print the assistant's answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			u, err := s.requireUser()
			if err != nil {
				s.close(ctx)
				return err
			}
			defer s.close(ctx, u.ID)

			s.state.AppendMessage(client.Message{Role: client.RoleUser, Content: message})

			resp, err := s.client.SendMessage(ctx, u.ID, message)
			if err != nil {
				return err
			}
			s.state.AppendMessage(client.Message{
				Role:    client.RoleAssistant,
				Content: resp.Answer,
				Sources: resp.Sources,
			})

			fmt.Println(resp.Answer)
			for _, src := range resp.Sources {
				fmt.Printf("  - %s (%s)\n", src.Title, src.Date)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message to send (required)")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func newNewsCmd() *cobra.Command {
	var newsRange, instructions string

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Fetch curated news for a time window",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serviceURL, client.WithoutExecutor())
			defer func() { _ = c.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			items, err := c.FetchNews(ctx, newsRange, instructions)
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Printf("%s  %s\n", item.Date, item.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&newsRange, "range", "daily", "Time window: daily, weekly, or monthly")
	cmd.Flags().StringVar(&instructions, "instructions", "", "Focus instructions for retrieval")
	return cmd
}

func newReportCmd() *cobra.Command {
	var newsRange string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a text report over the news window",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			u, err := s.requireUser()
			if err != nil {
				s.close(ctx)
				return err
			}
			defer s.close(ctx, u.ID)

			report, err := s.client.GenerateReport(ctx, u.ID, newsRange)
			if err != nil {
				return err
			}
			s.state.SetReport(report)
			fmt.Println(report.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&newsRange, "range", "daily", "Time window: daily, weekly, or monthly")
	return cmd
}

func newPodcastCmd() *cobra.Command {
	var newsRange string

	cmd := &cobra.Command{
		Use:   "podcast",
		Short: "Generate an audio podcast over the news window",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			u, err := s.requireUser()
			if err != nil {
				s.close(ctx)
				return err
			}
			defer s.close(ctx, u.ID)

			pod, err := s.client.GeneratePodcast(ctx, u.ID, newsRange)
			if err != nil {
				return err
			}
			s.state.SetPodcast(client.Podcast{AudioURL: pod.AudioURL})
			fmt.Println(pod.AudioURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&newsRange, "range", "daily", "Time window: daily, weekly, or monthly")
	return cmd
}

func newClearSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-session",
		Short: "Purge the server-held conversation memory for the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			u, err := s.requireUser()
			if err != nil {
				s.close(ctx)
				return err
			}
			defer s.close(ctx, u.ID)

			resp, err := s.client.ClearChatSession(ctx, u.ID)
			if err != nil {
				return err
			}
			fmt.Println(resp.Message)
			return nil
		},
	}
}
