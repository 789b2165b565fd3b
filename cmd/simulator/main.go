// Command simulator is a terminal chat with the finance assistant. Transactions
// are kept in memory for the lifetime of the process.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
)

const envPrefix = "FINCHAT"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "simulator",
		Short: "💬 Chat with the finance assistant in the terminal",
		Long: `Reads one message per line from standard input and prints the assistant reply.

Messages such as "gastei 20 com marmita" or "ganhei 50 do freelance" are recorded,
"saldo do dia" answers with today's balance. /resumo shows the daily summary and
/relatorio [inicio] [fim] a report between two dates (YYYY-MM-DD).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Initialize(v.GetString("log-level")); err != nil {
				return fmt.Errorf("failed to setup logging: %w", err)
			}
			defer logger.Sync()

			location, err := time.LoadLocation(v.GetString("timezone"))
			if err != nil {
				return fmt.Errorf("invalid timezone: %w", err)
			}

			s := newSession(sessionConfig{
				phone:    v.GetString("phone"),
				delay:    v.GetDuration("delay"),
				location: location,
			}, in, out)
			return s.run(cmd.Context())
		},
	}

	cmd.Flags().Duration("delay", 500*time.Millisecond, "Pause before each reply")
	cmd.Flags().String("timezone", "America/Sao_Paulo", "Time zone that defines calendar days")
	cmd.Flags().String("phone", "5511999999999", "Phone number of the simulated user")
	cmd.Flags().String("log-level", "error", "log level (debug, info, warn, error)")

	_ = v.BindPFlags(cmd.Flags())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}
