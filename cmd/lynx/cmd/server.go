/*
File    : lynx/cmd/lynx/cmd/server.go
*/
package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lynxlang/lynx/repl"
)

var serverCmd = &cobra.Command{
	Use:   "server [port]",
	Short: "Serve interactive REPL sessions over TCP",
	Args:  cobra.ExactArgs(1),
	RunE:  runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

// runServer accepts TCP connections and runs one REPL per connection
// concurrently, tagging each session with a UUID for log correlation.
// errgroup.WithContext ties every connection's goroutine to the listener's
// lifetime: an os signal cancels the context, the accept loop stops, and
// Wait blocks until in-flight sessions finish closing out.
func runServer(cmd *cobra.Command, args []string) error {
	port := args[0]
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)

	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on :%s: %w", port, err)
	}
	defer listener.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	cyan.Printf("lynx REPL server listening on :%s\n", port)

	group.Go(func() error {
		<-ctx.Done()
		return listener.Close()
	})

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break // listener closed because the server is shutting down
			}
			red.Fprintf(os.Stderr, "accept error: %v\n", err)
			continue
		}

		sessionID := uuid.New().String()
		group.Go(func() error {
			defer conn.Close()
			cyan.Printf("[%s] session started from %s\n", sessionID, conn.RemoteAddr())
			r := repl.NewRepl(banner, version, separator, promptString)
			r.StartConn(conn, conn)
			cyan.Printf("[%s] session ended\n", sessionID)
			return nil
		})
	}

	return group.Wait()
}
