package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voice-skill/config"
	"voice-skill/internal/scalehelper"
	"voice-skill/internal/skill"
	skillUC "voice-skill/internal/skill/usecase"
	"voice-skill/pkg/alexa"
	"voice-skill/pkg/log"
)

var (
	appID    string
	anyApp   bool
	pretty   bool
	logLevel string

	uc skill.UseCase
)

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "invoke [event.json|-]",
		Short:         "Run a skill event file through the dispatcher and print the envelope",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if appID != "" {
				viper.Set("skill.application_id", appID)
			}
			if anyApp {
				viper.Set("skill.verify_application_id", false)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			l := log.Init(log.ZapConfig{Level: logLevel, Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})

			app := skill.RequireApplicationID(cfg.Skill.ApplicationID)
			if !cfg.Skill.VerifyApplicationID {
				app = skill.AnyApplication()
			}

			uc, err = skillUC.New(scalehelper.New(l, app, scalehelper.NewCatalog(cfg.ScaleHelper.Scales)), l)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := readEvent(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			p := &printer{out: cmd.OutOrStdout(), pretty: pretty}
			uc.Execute(cmd.Context(), event, p)
			return p.err
		},
	}

	root.Flags().StringVar(&appID, "app-id", "", "expected application id (overrides config)")
	root.Flags().BoolVar(&anyApp, "any-app", false, "accept events for any application id")
	root.Flags().BoolVar(&pretty, "pretty", false, "indent the printed envelope")
	root.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return root
}

func readEvent(stdin io.Reader, path string) (*alexa.Event, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var event alexa.Event
	if err := json.NewDecoder(r).Decode(&event); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return &event, nil
}

// printer is the CLI's skill.Completion: envelopes go to out, failures are
// returned from RunE.
type printer struct {
	out    io.Writer
	pretty bool
	err    error
}

func (p *printer) Succeed(env *alexa.Envelope) {
	if env == nil {
		fmt.Fprintln(p.out, "session ended")
		return
	}

	enc := json.NewEncoder(p.out)
	if p.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(env); err != nil {
		p.err = err
	}
}

func (p *printer) Fail(err error) {
	p.err = fmt.Errorf("%s: %w", skill.KindOf(err), err)
}
