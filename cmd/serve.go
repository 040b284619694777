package cmd

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/cyounger/gensudoku/internal/tui"
)

var (
	serveHost    string
	servePort    string
	serveHostKey string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Sudoku game over SSH",
		Long: `Start an SSH server that serves the interactive game, so players can
connect with a plain ssh client instead of installing gensudoku.`,
		RunE: runServe,
	}

	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().StringVar(&servePort, "port", "23234", "Port to listen on")
	serveCmd.Flags().StringVar(&serveHostKey, "host-key", ".ssh/gensudoku_ed25519", "Path to the SSH host key")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(serveHost, servePort)),
		wish.WithHostKeyPath(serveHostKey),
		wish.WithMiddleware(
			bm.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return err
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", serveHost, "port", servePort)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("could not start server", "error", err)
			done <- nil
		}
	}()

	<-done
	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// teaHandler starts a game session for an incoming SSH connection,
// sized to the client's pty.
func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()

	// Color support detection does not work through the session pipe;
	// force a 256-color profile.
	lipgloss.SetColorProfile(termenv.ANSI256)

	return tui.NewMenu(pty.Window.Width, pty.Window.Height), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}
