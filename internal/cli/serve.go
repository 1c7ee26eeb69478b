package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/lifeweeks/pkg/cache"
	"github.com/matzehuels/lifeweeks/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calendars over HTTP",
		Example: `  lifeweeks serve --addr :9000
  curl -o ana.pdf 'localhost:9000/api/v1/calendar?birth=1990-05-19&name=Ana'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache, cache.NewScopedKeyer(nil, "api:"))
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(addr, runner, loggerFromContext(ctx))
			printInfo("Serving calendars")
			printKeyValue("Address", StyleHighlight.Render(addr))
			backend := c.Config.Cache.Backend
			if noCache {
				backend = cache.BackendNone
			}
			printKeyValue("Cache", backend)
			printDetail("Press Ctrl+C to stop")
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
